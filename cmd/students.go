package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/8bitgaijin/Learniverse-sub001/internal/store"
)

var studentsCmd = &cobra.Command{
	Use:   "students",
	Short: "Manage students",
}

var studentsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new student",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return fmt.Errorf("student name is empty")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.AddStudent(context.Background(), store.Student{Name: name})
		if err != nil {
			return fmt.Errorf("add student: %w", err)
		}
		fmt.Printf("Added student %q (#%d)\n", name, id)
		return nil
	},
}

var studentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List students",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		students, err := st.ListStudents(context.Background())
		if err != nil {
			return fmt.Errorf("list students: %w", err)
		}
		if len(students) == 0 {
			fmt.Println("No students yet. Add one with: learniverse students add <name>")
			return nil
		}
		for _, s := range students {
			fmt.Printf("%4d  %s\n", s.ID, s.Name)
		}
		return nil
	},
}

func init() {
	studentsCmd.AddCommand(studentsAddCmd)
	studentsCmd.AddCommand(studentsListCmd)
}

// openStore opens the progress database for a CLI subcommand.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
