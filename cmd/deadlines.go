package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"uaetax/internal/compliance"
	"uaetax/internal/logger"
)

var deadlinesCmd = &cobra.Command{
	Use:   "deadlines",
	Short: "Derive filing deadlines and compliance notifications",
	Long: `Evaluate the rolling filing calendar against the company profile: the
next VAT return deadline (28th of the following month), the CIT submission
date, profile completeness and mandatory document uploads. Emits the
prioritized, deduplicated notification list.

With --watch the command keeps re-evaluating on a fixed interval until
interrupted, the way the engine runs embedded in the application.`,
	Example: `  # One-shot notification listing
  uaetax deadlines --profile profile.json

  # Re-evaluate every 60 seconds until Ctrl-C
  uaetax deadlines --profile profile.json --watch

  # Mark documents as uploaded
  uaetax deadlines --profile profile.json --uploaded agent_certificate`,
	RunE: runDeadlines,
}

func init() {
	rootCmd.AddCommand(deadlinesCmd)

	deadlinesCmd.Flags().StringP("profile", "p", "profile.json", "Company profile JSON file")
	deadlinesCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	deadlinesCmd.Flags().Bool("watch", false, "Keep re-evaluating on a fixed interval")
	deadlinesCmd.Flags().Duration("interval", compliance.DefaultInterval, "Re-evaluation interval in watch mode")
	deadlinesCmd.Flags().StringSlice("uploaded", nil, "Document keys already uploaded (e.g. agent_certificate)")
}

func runDeadlines(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("deadlines")

	profilePath, _ := cmd.Flags().GetString("profile")
	outputPath, _ := cmd.Flags().GetString("output")
	watch, _ := cmd.Flags().GetBool("watch")
	interval, _ := cmd.Flags().GetDuration("interval")
	uploaded, _ := cmd.Flags().GetStringSlice("uploaded")

	profile, err := loadProfile(profilePath, log)
	if err != nil {
		return err
	}

	docs := make(map[string]bool, len(uploaded))
	for _, key := range uploaded {
		docs[key] = true
	}
	state := compliance.EvaluationState{Profile: *profile, UploadedDocuments: docs}

	set := compliance.NewSet()

	if !watch {
		set.Apply(compliance.Generate(state, time.Now()))
		active := set.Active()
		log.Info().
			Int("notifications", len(active)).
			Msg("Notification evaluation completed")
		return writeJSONOutput(active, outputPath, log)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	scheduler := compliance.NewScheduler(set, func() compliance.EvaluationState { return state }, interval)

	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	log.Info().
		Dur("interval", interval).
		Msg("Watching compliance deadlines, press Ctrl-C to stop")

	<-done
	return writeJSONOutput(set.Active(), outputPath, log)
}
