package cook

import (
	"bytes"
	"fmt"
	"os"

	pizzacook "github.com/Dynatrace/pizzeria/pkg/cook"
	"github.com/Dynatrace/pizzeria/pkg/logd"
	"github.com/Dynatrace/pizzeria/pkg/menu"
	"github.com/Dynatrace/pizzeria/pkg/recipe"
	"github.com/Dynatrace/pizzeria/pkg/version"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	use                  = "cook"
	builderFlagName      = "builder"
	builderFlagShorthand = "b"
	RecipesFlagName      = "recipes"
	recipesFlagShorthand = "r"
	MetricsFileFlagName  = "metrics-file"
)

var (
	builderFlagValue     []string
	recipesFlagValue     string
	metricsFileFlagValue string

	log = logd.Get().WithName("cook-cmd")
)

type CommandBuilder struct {
	fs       afero.Fs
	registry *prometheus.Registry
}

func NewCookCommandBuilder() CommandBuilder {
	return CommandBuilder{}
}

func (builder CommandBuilder) SetFs(fs afero.Fs) CommandBuilder {
	builder.fs = fs

	return builder
}

func (builder CommandBuilder) SetRegistry(registry *prometheus.Registry) CommandBuilder {
	builder.registry = registry

	return builder
}

func (builder CommandBuilder) getFs() afero.Fs {
	if builder.fs == nil {
		builder.fs = afero.NewOsFs()
	}

	return builder.fs
}

func (builder CommandBuilder) getRegistry() *prometheus.Registry {
	if builder.registry == nil {
		builder.registry = prometheus.NewRegistry()
	}

	return builder.registry
}

func (builder CommandBuilder) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:          use,
		Short:        "Construct pizzas with one cook, one builder after another",
		RunE:         builder.buildRun(),
		SilenceUsage: true,
	}

	addFlags(cmd)

	return cmd
}

func addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringSliceVarP(&builderFlagValue, builderFlagName, builderFlagShorthand, []string{}, "Pizza builder to use. Repeat the flag to reuse the cook for several pizzas.")
	cmd.PersistentFlags().StringVarP(&recipesFlagValue, RecipesFlagName, recipesFlagShorthand, os.Getenv(recipe.FileEnv), "YAML file with additional recipes.")
	cmd.PersistentFlags().StringVar(&metricsFileFlagValue, MetricsFileFlagName, "", "Write the cook metrics in the prometheus text format to this file.")
}

func (builder CommandBuilder) buildRun() func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		version.LogVersion()

		if len(builderFlagValue) == 0 {
			return errors.Errorf("at least one --%s is required", builderFlagName)
		}

		pizzaMenu, err := menu.Load(builder.getFs(), recipesFlagValue)
		if err != nil {
			return err
		}

		registry := builder.getRegistry()

		metrics, err := pizzacook.NewMetrics(registry)
		if err != nil {
			return err
		}

		err = runCook(cmd, pizzaMenu, pizzacook.NewCook(pizzacook.WithMetrics(metrics)), builderFlagValue)
		if err != nil {
			return err
		}

		return reportMetrics(builder.getFs(), registry, metricsFileFlagValue)
	}
}

func runCook(cmd *cobra.Command, pizzaMenu *menu.Menu, cook *pizzacook.Cook, builderNames []string) error {
	for _, name := range builderNames {
		pizzaBuilder, err := pizzaMenu.Lookup(name)
		if err != nil {
			return err
		}

		cook.SetPizzaBuilder(pizzaBuilder)

		if err := cook.ConstructPizza(); err != nil {
			return err
		}

		p, err := cook.GetPizza()
		if err != nil {
			return err
		}

		log.Info("pizza ready", "builder", name, "pizza", p.ID().String())

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), p.Describe()); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

// reportMetrics logs the constructed totals per builder and, if metricsFile is
// set, writes every gathered family there in the text exposition format.
func reportMetrics(fs afero.Fs, gatherer prometheus.Gatherer, metricsFile string) error {
	families, err := gatherer.Gather()
	if err != nil {
		return errors.WithStack(err)
	}

	content := bytes.Buffer{}

	for _, family := range families {
		if family.GetName() == pizzacook.ConstructedMetricName {
			logConstructed(family)
		}

		if _, err := expfmt.MetricFamilyToText(&content, family); err != nil {
			return errors.WithStack(err)
		}
	}

	if metricsFile == "" {
		return nil
	}

	if err := afero.WriteFile(fs, metricsFile, content.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", metricsFile)
	}

	return nil
}

func logConstructed(family *dto.MetricFamily) {
	for _, metric := range family.GetMetric() {
		for _, label := range metric.GetLabel() {
			if label.GetName() == pizzacook.BuilderLabel {
				log.Info("pizzas constructed", "builder", label.GetValue(), "total", metric.GetCounter().GetValue())
			}
		}
	}
}
