package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brandvoice/automation"
	"brandvoice/config"
	"brandvoice/generator"
	"brandvoice/quality"
	"brandvoice/server"
)

var (
	dryRun    bool
	printHTML bool
	asJSON    bool
	addr      string
)

var draftCmd = &cobra.Command{
	Use:   "draft RECORD_ID",
	Short: "Generate a first draft for a request record and write it to its source record",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraft,
}

var scoreCmd = &cobra.Command{
	Use:   "score RECORD_ID",
	Short: "Score a stored draft with the heuristic rubric and write the metrics back",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

var reviewCmd = &cobra.Command{
	Use:   "review RECORD_ID",
	Short: "Ask the model for a qualitative brand voice review of a stored draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runReview,
}

var checkCmd = &cobra.Command{
	Use:   "check [FILE]",
	Short: "Score a draft from a file or stdin without touching the record store",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve draft, score and review as webhooks",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	draftCmd.Flags().BoolVar(&dryRun, "dry-run", false, "generate and print the draft without writing it")
	draftCmd.Flags().BoolVar(&printHTML, "html", false, "with --dry-run, print the draft rendered as HTML")
	checkCmd.Flags().BoolVar(&asJSON, "json", false, "print the full report as JSON")
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server_addr)")
}

func runDraft(cmd *cobra.Command, args []string) error {
	d, err := loadDeps(config.Need{Generation: true, Store: true})
	if err != nil {
		return err
	}
	drafter, err := automation.NewDrafter(d.cfg, d.store, d.agent, logger)
	if err != nil {
		return err
	}

	if !dryRun {
		res, err := drafter.Run(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.UpdatedID)
		return nil
	}

	res, err := drafter.Preview(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	out := res.Draft.Text
	if printHTML {
		if out, err = generator.RenderHTML(res.Draft.Text); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runScore(cmd *cobra.Command, args []string) error {
	d, err := loadDeps(config.Need{Store: true})
	if err != nil {
		return err
	}
	scorer, err := automation.NewScorer(d.cfg, d.store, logger)
	if err != nil {
		return err
	}
	res, err := scorer.Run(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Report.Summary())
	return nil
}

func runReview(cmd *cobra.Command, args []string) error {
	d, err := loadDeps(config.Need{Generation: true, Store: true})
	if err != nil {
		return err
	}
	reviewer, err := automation.NewReviewer(d.cfg, d.store, d.agent, logger)
	if err != nil {
		return err
	}
	res, err := reviewer.Run(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Analysis)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	report := quality.Score(string(data))
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.Summary())
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	d, err := loadDeps(config.Need{Generation: true, Store: true})
	if err != nil {
		return err
	}
	drafter, err := automation.NewDrafter(d.cfg, d.store, d.agent, logger)
	if err != nil {
		return err
	}
	scorer, err := automation.NewScorer(d.cfg, d.store, logger)
	if err != nil {
		return err
	}
	reviewer, err := automation.NewReviewer(d.cfg, d.store, d.agent, logger)
	if err != nil {
		return err
	}
	srv, err := server.New(drafter, scorer, reviewer, logger)
	if err != nil {
		return err
	}

	listen := d.cfg.ServerAddr
	if addr != "" {
		listen = addr
	}
	if listen == "" {
		listen = ":8080"
	}

	httpSrv := &http.Server{Addr: listen, Handler: srv.Routes()}
	go func() {
		<-cmd.Context().Done()
		_ = httpSrv.Close()
	}()
	logger.Info("starting web server", zap.String("addr", listen))
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
