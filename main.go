package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/SiRune-Etch/aws-cloud-controller/app"
	"github.com/SiRune-Etch/aws-cloud-controller/aws"
	"github.com/SiRune-Etch/aws-cloud-controller/settings"
	"github.com/SiRune-Etch/aws-cloud-controller/tui"
)

var (
	flagProfile string
	flagRegion  string
	flagLogFile string
)

func main() {
	root := &cobra.Command{
		Use:   "aws-cloud-controller",
		Short: "Terminal dashboard for EC2 instances and Lambda functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
		SilenceUsage: true,
	}
	root.Flags().StringVar(&flagProfile, "profile", "", "AWS shared-config profile")
	root.Flags().StringVar(&flagRegion, "region", "", "AWS region override")
	root.Flags().StringVar(&flagLogFile, "log-file", "aws-cloud-controller.log", "debug log destination")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load .env (ignore error if missing).
	_ = godotenv.Load()

	// Log to file since bubbletea captures stderr.
	logFile, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	path, err := settings.DefaultPath()
	if err != nil {
		return errors.Wrap(err, "resolve settings path")
	}
	store := settings.NewStore(path)
	saved, err := store.Load()
	if err != nil {
		log.Printf("main: settings load failed, continuing with defaults: %v", err)
		saved = settings.Default()
	}

	profiles, err := aws.ListProfiles()
	if err != nil {
		log.Printf("main: profile discovery failed: %v", err)
	}

	identity := resolveIdentity(saved, profiles)
	log.Printf("main: starting with profile=%q region=%q", identity.Profile, identity.Region)

	client, err := aws.NewClient(ctx, identity)
	if err != nil {
		return errors.Wrap(err, "build AWS client")
	}

	a := app.New(app.Options{
		Client: client,
		Factory: func(ctx context.Context, id aws.Identity) (app.CloudClient, error) {
			return aws.NewClient(ctx, id)
		},
		Store:      store,
		Profiles:   profiles,
		Identity:   identity,
		Configured: aws.CredentialsConfigured(),
	})

	p := tea.NewProgram(tui.NewModel(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run dashboard")
	}
	return nil
}

// resolveIdentity picks the starting profile: the --profile flag wins, then
// AWS_PROFILE, then the saved default profile when it still exists in the
// shared config.
func resolveIdentity(saved settings.Settings, profiles []string) aws.Identity {
	profile := flagProfile
	if profile == "" {
		profile = os.Getenv("AWS_PROFILE")
	}
	if profile == "" && saved.DefaultProfile != "" && slices.Contains(profiles, saved.DefaultProfile) {
		profile = saved.DefaultProfile
	}
	return aws.Identity{Profile: profile, Region: flagRegion}
}
