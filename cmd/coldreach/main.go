package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coldreach/coldreach/internal/config"
	"github.com/coldreach/coldreach/internal/draft"
	"github.com/coldreach/coldreach/internal/google"
	"github.com/coldreach/coldreach/internal/llm"
	"github.com/coldreach/coldreach/internal/logger"
	"github.com/coldreach/coldreach/internal/pipeline"
	"github.com/coldreach/coldreach/internal/prompt"
	"github.com/coldreach/coldreach/internal/record"
)

var rootCmd = &cobra.Command{
	Use:   "coldreach",
	Short: "Drafts personalized research outreach emails for review in Gmail",
}

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Interactively draft one email at a time",
	RunE:  runDraft,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Draft an email for every row of the configured spreadsheet",
	RunE:  runBatch,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize Google access and cache the session token",
	RunE:  runLogin,
}

var (
	sheetID string
	offline bool
)

func init() {
	draftCmd.Flags().BoolVar(&offline, "offline", false, "preview prompts with a local placeholder model, no provider calls")
	batchCmd.Flags().StringVar(&sheetID, "sheet", "", "spreadsheet id (overrides the configured one)")
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(loginCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logger.New(cfg.Log.Level, cfg.Log.Format), nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	_, err = google.Login(cmd.Context(), cfg.Google.CredentialsFile, cfg.Google.TokenFile, os.Stdin, os.Stdout)
	return err
}

func runDraft(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	generator, err := buildGenerator(cfg, log)
	if err != nil {
		return err
	}

	// The interactive mode stays usable without a draft service; publish
	// attempts then report that Gmail is not connected.
	var publisher draft.Publisher
	sess, err := google.Restore(ctx, cfg.Google.CredentialsFile, cfg.Google.TokenFile)
	if err != nil {
		log.Warn().Err(err).Msg("failed to connect to gmail, continuing without autodraft")
	} else {
		publisher, err = draft.NewGmailPublisher(ctx, sess, cfg.Draft.ObserverCC)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to gmail, continuing without autodraft")
			publisher = nil
		}
	}

	fmt.Println(strings.Repeat("+ ", 30))
	fmt.Println(" welcome to the automated cold email drafter utility ")
	fmt.Println(strings.Repeat("+ ", 30))
	fmt.Printf("\nenter email details (or %s to exit)\n", record.TerminationKeyword)

	controller := pipeline.New(profileFromConfig(cfg), generator, publisher, log)
	source := record.NewInteractiveSource(os.Stdin, os.Stdout)
	return controller.RunInteractive(ctx, source, os.Stdout)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	id := sheetID
	if id == "" {
		id = cfg.Sheet.ID
	}

	generator, err := buildGenerator(cfg, log)
	if err != nil {
		return err
	}

	// Batch mode cannot run without both providers, so auth failures are
	// fatal here.
	sess, err := google.Restore(ctx, cfg.Google.CredentialsFile, cfg.Google.TokenFile)
	if err != nil {
		return fmt.Errorf("failed to acquire google session: %w", err)
	}
	publisher, err := draft.NewGmailPublisher(ctx, sess, cfg.Draft.ObserverCC)
	if err != nil {
		return err
	}
	reader, err := google.NewSheetReader(ctx, sess)
	if err != nil {
		return err
	}

	tuples, err := record.NewSheetSource(reader, id, cfg.Sheet.Range).Tuples(ctx)
	if err != nil {
		return fmt.Errorf("failed to read spreadsheet: %w", err)
	}
	log.Info().Str("sheet", id).Int("rows", len(tuples)).Msg("starting batch run")

	stats := pipeline.New(profileFromConfig(cfg), generator, publisher, log).RunBatch(ctx, tuples)
	fmt.Printf("\nbatch complete: %d attempted, %d drafted\n", stats.Attempted, stats.Drafted)
	return nil
}

func buildGenerator(cfg *config.Config, log *logger.Logger) (*llm.Generator, error) {
	var client llm.Client
	if offline {
		client = llm.MockClient{}
	} else {
		apiKey, err := loadAPIKey(cfg.Model.APIKeyFile)
		if err != nil {
			return nil, err
		}
		client, err = llm.NewOpenAIClient(llm.Settings{APIKey: apiKey, BaseURL: cfg.Model.BaseURL})
		if err != nil {
			return nil, err
		}
	}
	return llm.NewGenerator(client, cfg.Model.Primary, cfg.Model.Fallback, log), nil
}

// loadAPIKey reads the saved model API key, prompting for and persisting it
// on first run.
func loadAPIKey(path string) (string, error) {
	if b, err := os.ReadFile(path); err == nil {
		key := strings.TrimSpace(string(b))
		if key != "" {
			return key, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to read api key file: %w", err)
	}

	fmt.Println("\nfirst time setup: enter your google ai studio api key")
	fmt.Println("get it from aistudio.google.com/app/apikey")
	fmt.Print("API Key: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read api key: %w", err)
	}
	key := strings.TrimSpace(line)
	if key == "" {
		return "", errors.New("api key is required")
	}
	if err := os.WriteFile(path, []byte(key+"\n"), 0600); err != nil {
		return "", fmt.Errorf("failed to save api key: %w", err)
	}
	fmt.Println("api key was saved successfully.")
	return key, nil
}

// profileFromConfig converts the configured sender identity into the prompt
// package's shape.
func profileFromConfig(cfg *config.Config) prompt.Profile {
	return prompt.Profile{
		Names:      cfg.Profile.Names,
		School:     cfg.Profile.School,
		Grade:      cfg.Profile.Grade,
		Coursework: cfg.Profile.Coursework,
	}
}
