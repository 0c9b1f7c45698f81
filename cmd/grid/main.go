package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"caretrack/internal/adapter/api"
	"caretrack/internal/config"
	"caretrack/internal/tui"
	"caretrack/pkg/translator"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	baseURL := flag.String("api", cfg.APIBaseURL, "task API base URL")
	lang := flag.String("lang", cfg.Language, "display language (fr|en)")
	flag.Parse()

	// The TUI owns the terminal, so zap output goes nowhere visible; keep a
	// no-op global so shared packages can still log through zap.L().
	zap.ReplaceGlobals(zap.NewNop())

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	client := api.NewClient(*baseURL, *lang)
	model := tui.NewModel(client, tui.BuildLabels(*lang), cfg.PageSize, cfg.Overscan)

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
