package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Show a student's recent sessions and lesson levels",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		ctx := context.Background()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		studentID, err := st.FindStudentID(ctx, name)
		if err != nil {
			return fmt.Errorf("student %q: %w", name, err)
		}

		streak, err := st.ConsecutiveDayStreak(ctx, studentID, time.Now())
		if err != nil {
			return fmt.Errorf("streak: %w", err)
		}
		fmt.Printf("%s — practice streak: %d day(s)\n\n", name, streak)

		levels, err := st.LessonLevels(ctx, studentID)
		if err != nil {
			return fmt.Errorf("lesson levels: %w", err)
		}
		if len(levels) > 0 {
			fmt.Println("Lesson levels:")
			for _, l := range levels {
				fmt.Printf("  %-30s level %d\n", l.LessonTitle, l.Level)
			}
			fmt.Println()
		}

		sessions, err := st.SessionSummaries(ctx, studentID, 10)
		if err != nil {
			return fmt.Errorf("sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		fmt.Println("Recent sessions:")
		for _, s := range sessions {
			end := "(open)"
			if s.EndTime != nil {
				end = fmt.Sprintf("%d/%d correct, avg %.1fs",
					s.TotalCorrect, s.TotalQuestions, s.AvgTime)
			}
			fmt.Printf("  %s  %s\n", s.StartTime.Local().Format("2006-01-02 15:04"), end)
		}
		return nil
	},
}
