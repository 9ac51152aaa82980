package menu

import (
	"fmt"
	"os"

	"github.com/Dynatrace/pizzeria/pkg/logd"
	pizzamenu "github.com/Dynatrace/pizzeria/pkg/menu"
	"github.com/Dynatrace/pizzeria/pkg/recipe"
	"github.com/Dynatrace/pizzeria/pkg/version"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	use                  = "menu"
	recipesFlagName      = "recipes"
	recipesFlagShorthand = "r"
)

var (
	recipesFlagValue string

	log = logd.Get().WithName("menu-cmd")
)

type CommandBuilder struct {
	fs afero.Fs
}

func NewMenuCommandBuilder() CommandBuilder {
	return CommandBuilder{}
}

func (builder CommandBuilder) SetFs(fs afero.Fs) CommandBuilder {
	builder.fs = fs

	return builder
}

func (builder CommandBuilder) getFs() afero.Fs {
	if builder.fs == nil {
		builder.fs = afero.NewOsFs()
	}

	return builder.fs
}

func (builder CommandBuilder) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:          use,
		Short:        "List the pizza builders and what each of them yields",
		RunE:         builder.buildRun(),
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&recipesFlagValue, recipesFlagName, recipesFlagShorthand, os.Getenv(recipe.FileEnv), "YAML file with additional recipes.")

	return cmd
}

func (builder CommandBuilder) buildRun() func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		version.LogVersion()

		pizzaMenu, err := pizzamenu.Load(builder.getFs(), recipesFlagValue)
		if err != nil {
			return err
		}

		names := pizzaMenu.Names()
		log.Debug("listing menu", "variants", len(names))

		for _, name := range names {
			preview, err := pizzaMenu.Preview(name)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, preview.Describe()); err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	}
}
