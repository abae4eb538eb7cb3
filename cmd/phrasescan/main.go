package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kerem-kaynak/phrase-matcher/internal/config"
	"github.com/kerem-kaynak/phrase-matcher/internal/logger"
	"github.com/kerem-kaynak/phrase-matcher/internal/scan"
	"go.uber.org/zap"
)

// line is one JSON output record.
type line struct {
	Path   string `json:"path"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Phrase string `json:"phrase"`
	Text   string `json:"text"`
}

func main() {
	cfgPath := flag.String("config", "", "path to YAML configuration file")
	ignoreCase := flag.Bool("ignore-case", false, "match case-insensitively")
	phraseFile := flag.String("phrases", "", "phrase list file, one phrase per line")
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		_, _ = w.Write([]byte("Usage: phrasescan [flags] [file...]   (reads stdin when no file is given)\n"))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		// logger not initialised yet, fallback to stderr
		log.Fatalf("init config failed, err:%v", err)
	}
	if *ignoreCase {
		cfg.IgnoreCase = true
	}
	if *phraseFile != "" {
		cfg.PhraseFiles = append(cfg.PhraseFiles, *phraseFile)
	}

	logkit, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger failed, err:%v", err)
	}
	defer logkit.Sync() //nolint:errcheck

	b, err := cfg.Builder()
	if err != nil {
		logkit.Fatal("load phrases failed", zap.Error(err))
	}
	m, err := b.WithLogger(logkit).Build()
	if err != nil {
		logkit.Fatal("build matcher failed", zap.Error(err))
	}
	if m.Size() == 0 {
		logkit.Warn("no phrases registered, nothing will match")
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{scan.Stdin}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := scan.Files(ctx, m, paths, cfg.Workers)
	if err != nil {
		logkit.Fatal("scan failed", zap.Error(err))
	}

	out := bufio.NewWriter(os.Stdout)
	enc := json.NewEncoder(out)
	total := 0
	for _, r := range results {
		for _, match := range r.Matches {
			if err := enc.Encode(line{
				Path:   r.Path,
				Start:  match.Start,
				End:    match.End,
				Phrase: match.Phrase,
				Text:   match.Text,
			}); err != nil {
				logkit.Fatal("write output failed", zap.Error(err))
			}
			total++
		}
	}
	if err := out.Flush(); err != nil {
		logkit.Fatal("write output failed", zap.Error(err))
	}
	logkit.Info("scan complete",
		zap.Int("inputs", len(paths)),
		zap.Int("phrases", m.Size()),
		zap.Int("matches", total),
		zap.Int("workers", cfg.Workers),
	)
}
