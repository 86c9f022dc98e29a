package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/craftkit/stencil/pkg/adapter"
	"github.com/craftkit/stencil/pkg/catalog"
	"github.com/craftkit/stencil/pkg/config"
	"github.com/craftkit/stencil/pkg/export"
	"github.com/craftkit/stencil/pkg/generate"
	"github.com/craftkit/stencil/pkg/insight"
	"github.com/craftkit/stencil/pkg/prompt"
	"github.com/craftkit/stencil/pkg/router"
	"github.com/craftkit/stencil/pkg/store"
	"github.com/craftkit/stencil/pkg/template"
)

var (
	verboseFlag bool
	userFlag    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stencil",
		Short: "AI-powered content template generator",
		Long: `Stencil generates content templates (documents, designs, web pages,
	presentations, emails) using specialized AI models. Each category is
	routed to its best-fit model, with a general-purpose fallback when the
	specialized call fails.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "local", "acting user ID for store operations")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(modelsCmd())
	rootCmd.AddCommand(fieldsCmd())
	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(insightsCmd())
	rootCmd.AddCommand(imagesCmd())
	rootCmd.AddCommand(templatesCmd())
	rootCmd.AddCommand(buyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if verboseFlag {
		log, err := zap.NewDevelopment()
		if err == nil {
			return log
		}
	}
	return zap.NewNop()
}

func generateCmd() *cobra.Command {
	var (
		fieldFlags  []string
		modelFlag   string
		purposeFlag string
		noAdvanced  bool
		enhanceFlag bool
		saveFlag    bool
		exportFlag  string
		outFlag     string
		titleFlag   string
	)

	cmd := &cobra.Command{
		Use:   "generate [category]",
		Short: "Generate a template for a category",
		Long: `Generates a content template. The category's best-fit model is
	selected automatically; override with --model. On failure the request
	retries exactly once against the standard fallback model. Use
	--no-advanced to skip the specialized model entirely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := template.ParseCategory(args[0])
			if err != nil {
				return err
			}
			fields, err := parseFields(fieldFlags)
			if err != nil {
				return err
			}
			if err := fields.Validate(cat); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := newLogger()
			defer log.Sync()

			orch, err := newOrchestrator(cfg, log)
			if err != nil {
				return err
			}

			ctx := context.Background()
			a, err := orch.Generate(ctx, cat, fields, generate.Options{
				UseAdvancedModel: !noAdvanced,
				ModelKey:         modelFlag,
				Purpose:          purposeFlag,
				MaxTokens:        cfg.Generation.MaxTokens,
				Temperature:      cfg.Generation.Temperature,
				TopP:             cfg.Generation.TopP,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Generated with %s\n", a.ModelKey)
			fmt.Println(a.Content)

			if enhanceFlag {
				// Enhancement requires a second pass; surface it separately.
				fmt.Fprintln(os.Stderr, "Enhanced prompt:")
				fmt.Fprintln(os.Stderr, orch.Enhance(ctx, a.Prompt))
			}

			if saveFlag {
				s, err := store.Open(cfg.DBPath, log)
				if err != nil {
					return err
				}
				vars, _ := json.Marshal(a.Variables())
				rec := &store.Template{
					UserID:       userFlag,
					Title:        titleOrDefault(titleFlag, cat),
					Category:     cat,
					TemplateType: purposeOrGeneral(purposeFlag),
					Content:      a.Content,
					Variables:    string(vars),
				}
				if err := s.CreateTemplate(ctx, rec); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "Saved template %s\n", rec.ID)
			}

			if exportFlag != "" {
				format, err := export.ParseFormat(exportFlag)
				if err != nil {
					return err
				}
				path, err := export.Write(outFlag, "template", format, a.Content)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "Exported to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&fieldFlags, "field", "f", nil, "field value as key=value (repeatable)")
	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "pin a catalog model key")
	cmd.Flags().StringVarP(&purposeFlag, "purpose", "p", "general", "generation purpose")
	cmd.Flags().BoolVar(&noAdvanced, "no-advanced", false, "skip the specialized model and use the standard one")
	cmd.Flags().BoolVar(&enhanceFlag, "enhance", false, "also print an enhanced version of the prompt")
	cmd.Flags().BoolVar(&saveFlag, "save", false, "save the result to the local store")
	cmd.Flags().StringVar(&exportFlag, "export", "", "export format: html, pdf, png, docx")
	cmd.Flags().StringVarP(&outFlag, "out", "o", ".", "export output directory")
	cmd.Flags().StringVar(&titleFlag, "title", "", "title for the saved template")
	return cmd
}

func modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the model catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tMODEL ID\tTAGS")
			for _, d := range catalog.Builtin().Entries() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					d.Key, d.DisplayName, d.ProviderModelID, strings.Join(d.Tags, ","))
			}
			return w.Flush()
		},
	}
}

func fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields [category]",
		Short: "Show the form fields for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := template.ParseCategory(args[0])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tLABEL\tTYPE\tREQUIRED\tOPTIONS")
			for _, f := range template.FieldsFor(cat) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n",
					f.Key, f.Label, f.Type, f.Required, strings.Join(f.Options, ","))
			}
			return w.Flush()
		},
	}
}

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [category]",
		Short: "Show prefilled suggestions for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := template.ParseCategory(args[0])
			if err != nil {
				return err
			}
			for _, s := range template.SuggestionsFor(cat) {
				fmt.Printf("%s: %s\n  %s\n", s.ID, s.Title, s.Description)
				for _, f := range template.FieldsFor(cat) {
					if v := s.Fields.Get(f.Key, ""); v != "" {
						fmt.Printf("  --field %s=%q\n", f.Key, v)
					}
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func compareCmd() *cobra.Command {
	var (
		modelFlags []string
		fieldFlags []string
	)

	cmd := &cobra.Command{
		Use:   "compare [category]",
		Short: "Generate with several models and compare the results",
		Long: `Fires one generation call per requested model concurrently and
	prints the results that succeeded. Failures are dropped silently.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := template.ParseCategory(args[0])
			if err != nil {
				return err
			}
			fields, err := parseFields(fieldFlags)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := newLogger()
			defer log.Sync()

			orch, err := newOrchestrator(cfg, log)
			if err != nil {
				return err
			}

			text, err := buildAnyPrompt(cat, fields)
			if err != nil {
				return err
			}

			results := orch.CompareModels(context.Background(), text, cat, modelFlags)
			if len(results) == 0 {
				return fmt.Errorf("all comparison calls failed")
			}
			for _, r := range results {
				fmt.Printf("=== %s ===\n%s\n\n", r.ModelKey, r.Content)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&modelFlags, "model", "m", nil, "catalog model key (repeatable)")
	cmd.Flags().StringArrayVarP(&fieldFlags, "field", "f", nil, "field value as key=value (repeatable)")
	return cmd
}

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights [audience]",
		Short: "Surface social media pain points for an audience",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := newLogger()
			defer log.Sync()

			if !cfg.HasProvider("serper") {
				return fmt.Errorf("SERPER_API_KEY is required for insights")
			}
			standard, err := newStandardAdapter(cfg)
			if err != nil {
				return err
			}

			searcher := insight.NewSerperClient(insight.WithAPIKey(cfg.SerperAPIKey))
			extractor := insight.NewExtractor(searcher, standard, log)

			points, err := extractor.PainPoints(context.Background(), args[0])
			if err != nil {
				return err
			}
			if len(points) == 0 {
				fmt.Fprintln(os.Stderr, "No insights found")
				return nil
			}
			for _, p := range points {
				fmt.Println(p)
			}
			return nil
		},
	}
}

func imagesCmd() *cobra.Command {
	var fieldFlags []string

	cmd := &cobra.Command{
		Use:   "images",
		Short: "Generate preview images for a design template",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFields(fieldFlags)
			if err != nil {
				return err
			}
			if fields.Get("title", "") == "" || fields.Get("style", "") == "" {
				return fmt.Errorf("image generation requires --field title=... and --field style=...")
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := newLogger()
			defer log.Sync()

			orch, err := newOrchestrator(cfg, log)
			if err != nil {
				return err
			}

			images := orch.DesignImages(context.Background(), fields)
			if len(images) == 0 {
				return fmt.Errorf("image generation produced no results")
			}
			for _, img := range images {
				if img.URL != "" {
					fmt.Println(img.URL)
				} else {
					fmt.Printf("inline image (%s, %d bytes)\n", img.MIMEType, len(img.Data))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&fieldFlags, "field", "f", nil, "field value as key=value (repeatable)")
	return cmd
}

func templatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage stored templates",
	}

	var categoryFlag string
	var publishedFlag bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List stored templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			filter := store.ListFilter{PublishedOnly: publishedFlag}
			if categoryFlag != "" {
				cat, err := template.ParseCategory(categoryFlag)
				if err != nil {
					return err
				}
				filter.Category = cat
			}
			templates, err := s.ListTemplates(context.Background(), filter)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPUBLISHED\tPRICE\tSALES")
			for _, t := range templates {
				fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%.2f\t%d\n",
					t.ID, t.Title, t.Category, t.IsPublished, t.Price, t.SalesCount)
			}
			return w.Flush()
		},
	}
	list.Flags().StringVar(&categoryFlag, "category", "", "filter by category")
	list.Flags().BoolVar(&publishedFlag, "published", false, "only published templates")

	var priceFlag float64
	publish := &cobra.Command{
		Use:   "publish [template-id]",
		Short: "Publish a template to the marketplace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			return s.Publish(context.Background(), args[0], priceFlag)
		},
	}
	publish.Flags().Float64Var(&priceFlag, "price", 0, "listing price")

	del := &cobra.Command{
		Use:   "delete [template-id]",
		Short: "Delete a stored template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			return s.DeleteTemplate(context.Background(), args[0])
		},
	}

	cmd.AddCommand(list, publish, del)
	return cmd
}

func buyCmd() *cobra.Command {
	var (
		nameFlag   string
		numberFlag string
		expiryFlag string
		cvcFlag    string
	)

	cmd := &cobra.Command{
		Use:   "buy [template-id]",
		Short: "Purchase a published template (simulated payment)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			p, err := s.Checkout(context.Background(), userFlag, args[0], store.Card{
				HolderName: nameFlag,
				Number:     numberFlag,
				Expiry:     expiryFlag,
				CVC:        cvcFlag,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Purchase %s complete: %.2f\n", p.ID, p.Amount)
			return nil
		},
	}

	cmd.Flags().StringVar(&nameFlag, "card-name", "", "cardholder name")
	cmd.Flags().StringVar(&numberFlag, "card-number", "", "card number")
	cmd.Flags().StringVar(&expiryFlag, "card-expiry", "", "card expiry MM/YY")
	cmd.Flags().StringVar(&cvcFlag, "card-cvc", "", "card CVC")
	return cmd
}

func newOrchestrator(cfg *config.Config, log *zap.Logger) (*generate.Orchestrator, error) {
	advanced, err := newAdvancedAdapter(cfg)
	if err != nil {
		return nil, err
	}
	standard, err := newStandardAdapter(cfg)
	if err != nil {
		return nil, err
	}

	opts := []generate.Option{generate.WithLogger(log)}
	if cfg.HasProvider("google") {
		google, err := adapter.NewGoogleAdapter(cfg.GoogleAPIKey)
		if err != nil {
			return nil, err
		}
		opts = append(opts, generate.WithImages(google))
	}

	r := router.New(catalog.Builtin())
	return generate.New(r, advanced, standard, opts...), nil
}

func newAdvancedAdapter(cfg *config.Config) (adapter.TextGenerator, error) {
	if !cfg.HasProvider("openrouter") {
		return nil, fmt.Errorf("OPENROUTER_API_KEY is required for advanced generation")
	}
	return adapter.NewOpenRouterAdapter(cfg.OpenRouterAPIKey)
}

func newStandardAdapter(cfg *config.Config) (adapter.TextGenerator, error) {
	switch {
	case cfg.HasProvider("openai"):
		return adapter.NewOpenAIAdapter(cfg.OpenAIAPIKey)
	case cfg.HasProvider("anthropic"):
		return adapter.NewAnthropicAdapter(cfg.AnthropicAPIKey)
	case cfg.HasProvider("google"):
		return adapter.NewGoogleAdapter(cfg.GoogleAPIKey)
	}
	return nil, fmt.Errorf("a fallback provider key is required (OPENAI_API_KEY, ANTHROPIC_API_KEY, or GOOGLE_API_KEY)")
}

func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return store.Open(cfg.DBPath, newLogger())
}

func parseFields(flags []string) (template.Values, error) {
	fields := make(template.Values, len(flags))
	for _, f := range flags {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid field %q, expected key=value", f)
		}
		fields[key] = value
	}
	return fields, nil
}

func buildAnyPrompt(cat template.Category, fields template.Values) (string, error) {
	text, err := prompt.Build(cat, fields)
	if errors.Is(err, prompt.ErrUnsupportedCategory) {
		return prompt.Generic(cat, fields), nil
	}
	return text, err
}

func titleOrDefault(title string, cat template.Category) string {
	if title != "" {
		return title
	}
	return fmt.Sprintf("Generated %s template", cat)
}

func purposeOrGeneral(purpose string) string {
	if purpose != "" {
		return purpose
	}
	return "general"
}
