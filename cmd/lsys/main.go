package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lsys/internal/config"
	"github.com/san-kum/lsys/internal/library"
	"github.com/san-kum/lsys/internal/lsystem"
	"github.com/san-kum/lsys/internal/turtle"
	"github.com/san-kum/lsys/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	axiom      string
	ruleFlags  []string
	angle      float64
	step       float64
	iterations int
	speedMs    int
	countOnly  bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.WarnLevel,
	})
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lsys",
		Short: "L-system fractal curve renderer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the interactive TUI when no command given
			if err := viz.RunInteractive(); err != nil {
				logger.Error("interactive mode failed", "err", err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lsys", "library directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "animated rendering with pan/zoom",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, args)
			if err != nil {
				return err
			}
			return viz.RunLive(cfg)
		},
	}
	addCurveFlags(liveCmd)

	renderCmd := &cobra.Command{
		Use:   "render [preset]",
		Short: "render the full curve to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderCurve,
	}
	addCurveFlags(renderCmd)

	expandCmd := &cobra.Command{
		Use:   "expand [preset]",
		Short: "print the expanded symbol sequence",
		Args:  cobra.MaximumNArgs(1),
		RunE:  expandCurve,
	}
	addCurveFlags(expandCmd)
	expandCmd.Flags().BoolVar(&countOnly, "count", false, "print only the exact length")

	estimateCmd := &cobra.Command{
		Use:   "estimate [preset]",
		Short: "estimate the expanded sequence length",
		Args:  cobra.MaximumNArgs(1),
		RunE:  estimateCurve,
	}
	addCurveFlags(estimateCmd)

	growthCmd := &cobra.Command{
		Use:   "growth [preset]",
		Short: "plot sequence length per generation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotGrowth,
	}
	addCurveFlags(growthCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in curves",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.Presets[name]
				fmt.Printf("%-18s axiom=%-8s angle=%g°\n", name, cfg.Axiom, cfg.Angle)
			}
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, renderCmd, expandCmd, estimateCmd, growthCmd, presetsCmd, libraryCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCurveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&axiom, "axiom", "", "axiom string")
	cmd.Flags().StringSliceVar(&ruleFlags, "rule", nil, "rule as FROM=TO (repeatable)")
	cmd.Flags().Float64Var(&angle, "angle", config.DefaultAngle, "turn angle in degrees")
	cmd.Flags().Float64Var(&step, "step", config.DefaultStep, "step length")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", config.DefaultIterations, "rewrite generations")
	cmd.Flags().IntVar(&speedMs, "speed", config.DefaultSpeedMs, "animation delay per command (ms)")
}

// resolveConfig builds the curve configuration from, in precedence order:
// explicit flags, a --config file, a preset argument, the default curve.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			st := library.New(dataDir)
			loaded, err := st.Load(args[0])
			if err != nil {
				return nil, fmt.Errorf("unknown preset or library entry: %s (presets: %v)",
					args[0], config.ListPresets())
			}
			cfg = loaded
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if axiom != "" {
		cfg.Axiom = axiom
		cfg.Name = "custom"
	}
	if len(ruleFlags) > 0 {
		rules := make(map[string]string, len(ruleFlags))
		for _, r := range ruleFlags {
			from, to, ok := strings.Cut(r, "=")
			if !ok {
				return nil, fmt.Errorf("bad --rule %q, want FROM=TO", r)
			}
			rules[from] = to
		}
		cfg.Rules = rules
	}
	if cmd.Flags().Changed("angle") {
		cfg.Angle = angle
	}
	if cmd.Flags().Changed("step") {
		cfg.Step = step
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = iterations
	}
	if cmd.Flags().Changed("speed") {
		cfg.SpeedMs = speedMs
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("resolved configuration",
		"name", cfg.Name, "axiom", cfg.Axiom, "rules", len(cfg.Rules),
		"iterations", cfg.Iterations)
	return cfg, nil
}

func buildRuleSet(cfg *config.Config) (*lsystem.RuleSet, error) {
	rules, err := cfg.CompileRules()
	if err != nil {
		return nil, err
	}
	return lsystem.New(cfg.Axiom, rules)
}

func renderCurve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	rs, err := buildRuleSet(cfg)
	if err != nil {
		return err
	}

	est := lsystem.EstimateLength(rs, cfg.Iterations)
	if est > viz.ConfirmThreshold {
		logger.Warn("large expansion", "estimated", est)
	}

	path := turtle.NewPath()
	machine := turtle.NewMachine(path, cfg.Step, cfg.Angle, 0, 0)
	exp := lsystem.NewExpander(rs, cfg.Iterations)
	for sym, ok := exp.Next(); ok; sym, ok = exp.Next() {
		machine.Exec(sym)
	}

	canvas := viz.NewCanvas(80, 24)
	view := viz.FitTransform(path, canvas.DotWidth(), canvas.DotHeight(), 2)
	canvas.DrawPath(view, path)
	fmt.Print(canvas.String())
	logger.Debug("rendered", "segments", path.Len(), "scale", view.Scale)
	return nil
}

func expandCurve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	rs, err := buildRuleSet(cfg)
	if err != nil {
		return err
	}
	exp := lsystem.NewExpander(rs, cfg.Iterations)
	if countOnly {
		n := 0
		for _, ok := exp.Next(); ok; _, ok = exp.Next() {
			n++
		}
		fmt.Println(n)
		return nil
	}
	w := bufio.NewWriter(os.Stdout)
	for sym, ok := exp.Next(); ok; sym, ok = exp.Next() {
		w.WriteRune(sym)
	}
	w.WriteRune('\n')
	return w.Flush()
}

func estimateCurve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	rs, err := buildRuleSet(cfg)
	if err != nil {
		return err
	}
	est := lsystem.EstimateLength(rs, cfg.Iterations)
	fmt.Printf("generation %d: ~%d symbols\n", cfg.Iterations, est)
	if est > viz.ConfirmThreshold {
		fmt.Printf("above the %d symbol advisory threshold; expect a long draw\n",
			int(viz.ConfirmThreshold))
	}
	return nil
}

func plotGrowth(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	rs, err := buildRuleSet(cfg)
	if err != nil {
		return err
	}
	lengths := make([]float64, 0, cfg.Iterations+1)
	for g := 0; g <= cfg.Iterations; g++ {
		lengths = append(lengths, float64(lsystem.EstimateLength(rs, g)))
	}
	graph := asciigraph.Plot(lengths,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%s: sequence length, generations 0..%d", cfg.Name, cfg.Iterations)),
	)
	fmt.Println(graph)
	return nil
}

func libraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "manage saved rule sets",
	}

	saveCmd := &cobra.Command{
		Use:   "save [name]",
		Short: "save the resolved configuration under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, nil)
			if err != nil {
				return err
			}
			st := library.New(dataDir)
			if err := st.Init(); err != nil {
				return err
			}
			if err := st.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("saved %s\n", args[0])
			return nil
		},
	}
	addCurveFlags(saveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved rule sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := library.New(dataDir)
			entries, err := st.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("library is empty")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%-18s axiom=%-8s angle=%g° n=%d\n", e.Name, e.Axiom, e.Angle, e.Iterations)
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [name]",
		Short: "print one saved rule set as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := library.New(dataDir)
			cfg, err := st.Load(args[0])
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm [name]",
		Short: "delete a saved rule set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := library.New(dataDir)
			return st.Remove(args[0])
		},
	}

	cmd.AddCommand(saveCmd, listCmd, showCmd, rmCmd)
	return cmd
}
