/*
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"os"

	"github.com/Dynatrace/pizzeria/cmd/cook"
	"github.com/Dynatrace/pizzeria/cmd/menu"
	"github.com/Dynatrace/pizzeria/pkg/logd"
	"github.com/Dynatrace/pizzeria/pkg/version"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	log = logd.Get().WithName("main")
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     version.AppName,
		Version: version.Get().String(),
		RunE:    rootCommand,
	}

	return cmd
}

func createCookCommandBuilder() cook.CommandBuilder {
	return cook.NewCookCommandBuilder().
		SetFs(afero.NewOsFs())
}

func createMenuCommandBuilder() menu.CommandBuilder {
	return menu.NewMenuCommandBuilder().
		SetFs(afero.NewOsFs())
}

func rootCommand(_ *cobra.Command, _ []string) error {
	return errors.New("pizzeria must be called with one of the subcommands")
}

func main() {
	cmd := newRootCommand()

	cmd.AddCommand(
		createCookCommandBuilder().Build(),
		createMenuCommandBuilder().Build(),
	)

	err := cmd.Execute()
	if err != nil {
		log.Info(err.Error())
		os.Exit(1)
	}
}
