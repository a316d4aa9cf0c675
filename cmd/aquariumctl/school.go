package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"aquarium/internal/aquarium"
	"aquarium/internal/config"
	"aquarium/internal/infra"
)

var errInvocationFailed = errors.New("aquarium invocation failed")

type schoolFlags struct {
	locale     string
	ambassador bool
	timeout    time.Duration
	bodyOnly   bool
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer, loadConfig func() (config.Activity, error)) *cobra.Command {
	root := &cobra.Command{
		Use:           "aquariumctl",
		Short:         "Inspect the Mastodon activity aquarium",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newSchoolCmd(loadConfig))
	return root
}

func newSchoolCmd(loadConfig func() (config.Activity, error)) *cobra.Command {
	flags := &schoolFlags{}
	cmd := &cobra.Command{
		Use:   "school",
		Short: "Fetch instance activity once and print the aquarium response",
		Long: `Reads MASTODON_API_URL and MASTODON_API_USER_AGENT from the environment,
fetches /api/v1/instance/activity once and prints the response the endpoint
would serve. Exits non-zero when the response is an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchool(cmd, flags, loadConfig)
		},
	}
	cmd.Flags().StringVar(&flags.locale, "locale", "en", "legend locale (BCP 47)")
	cmd.Flags().BoolVar(&flags.ambassador, "ambassador", true, "append the ferris ambassador; overrides AQUARIUM_AMBASSADOR when set")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 30*time.Second, "deadline for the upstream request")
	cmd.Flags().BoolVar(&flags.bodyOnly, "body-only", false, "print only the JSON body")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log diagnostics to stderr")
	return cmd
}

func runSchool(cmd *cobra.Command, flags *schoolFlags, loadConfig func() (config.Activity, error)) error {
	if loadConfig == nil {
		loadConfig = config.Load
	}
	load := loadConfig
	if cmd.Flags().Changed("ambassador") {
		load = func() (config.Activity, error) {
			cfg, err := loadConfig()
			cfg.Ambassador = flags.ambassador
			return cfg, err
		}
	}

	logger := infra.NopLogger()
	if flags.verbose {
		l := infra.NewLogger("development").Output(cmd.ErrOrStderr())
		logger = &l
	}

	ctx, cancel := context.WithTimeout(context.Background(), flags.timeout)
	defer cancel()

	svc := aquarium.NewService(aquarium.Options{
		LoadConfig: load,
		HTTPClient: &http.Client{},
		Logger:     logger,
	})
	resp := svc.Invoke(ctx, flags.locale)

	out := cmd.OutOrStdout()
	if !flags.bodyOnly {
		fmt.Fprintf(out, "HTTP %d %s\n", resp.Status, http.StatusText(resp.Status))
		for _, key := range []string{"Content-Type", "Cache-Control"} {
			if v := resp.Header.Get(key); v != "" {
				fmt.Fprintf(out, "%s: %s\n", key, v)
			}
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, string(resp.Body))

	if resp.Status >= http.StatusInternalServerError {
		return errInvocationFailed
	}
	return nil
}
