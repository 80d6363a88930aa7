package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/oracle/internal/scheduler"
	"github.com/wonny/oracle/internal/scheduler/jobs"
)

var (
	scanSchedule string
	runScanNow   bool
)

var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Run the recurring scan scheduler",
	Long: `Runs the nightly full-universe scan on a cron schedule and
persists each scan's ranked results.

The schedule uses a six-field cron expression (with seconds).

Example:
  go run ./cmd/oracle scheduler
  go run ./cmd/oracle scheduler --schedule "0 0 2 * * *"
  go run ./cmd/oracle scheduler --now`,
	RunE: runScheduler,
}

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.Flags().StringVar(&scanSchedule, "schedule", "0 0 2 * * *", "cron schedule for the universe scan")
	schedulerCmd.Flags().BoolVar(&runScanNow, "now", false, "also run the scan immediately on start")
}

func runScheduler(cmd *cobra.Command, args []string) error {
	app, err := buildApp(true)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.initSchema(cmd.Context()); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	sched := scheduler.New(app.log)
	job := jobs.NewUniverseScanJob(
		app.scanner, app.universe, app.resultRepo(),
		app.cfg.Scan.PreFilterTop, scanSchedule, app.log)
	if err := sched.AddJob(job); err != nil {
		return fmt.Errorf("add job: %w", err)
	}

	sched.Start()
	defer sched.Stop()

	if runScanNow {
		if err := sched.RunNow(job.Name()); err != nil {
			return err
		}
	}

	fmt.Printf("Scheduler running (%s on %q)\n", job.Name(), scanSchedule)
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	return nil
}
