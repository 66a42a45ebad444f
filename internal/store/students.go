package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// AddStudent inserts a new student row. Names are unique.
func (s *Store) AddStudent(ctx context.Context, st Student) (int64, error) {
	var age sql.NullInt64
	if st.Age != nil {
		age = sql.NullInt64{Int64: int64(*st.Age), Valid: true}
	}
	var email sql.NullString
	if st.Email != nil {
		email = sql.NullString{String: *st.Email, Valid: true}
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO students (name, age, email) VALUES (?, ?, ?)`,
		st.Name, age, email,
	)
	if err != nil {
		return 0, fmt.Errorf("insert student: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("student id: %w", err)
	}
	return id, nil
}

// ListStudents returns all students ordered by name.
func (s *Store) ListStudents(ctx context.Context) ([]Student, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, age, email FROM students ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	var students []Student
	for rows.Next() {
		var st Student
		var age sql.NullInt64
		var email sql.NullString
		if err := rows.Scan(&st.ID, &st.Name, &age, &email); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		if age.Valid {
			a := int(age.Int64)
			st.Age = &a
		}
		if email.Valid {
			e := email.String
			st.Email = &e
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

// FindStudentID resolves a student name to a row ID.
func (s *Store) FindStudentID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM students WHERE name = ?`, name,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("student %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("find student: %w", err)
	}
	return id, nil
}
