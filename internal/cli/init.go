package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// newInitCmd creates the init command. It scaffolds a runnable skill project:
// main program, a hello-world intent with a test, the configuration file and
// starter translation catalogs.
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [name]",
		Short: "Scaffold a new skill project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			name := filepath.Base(dir)
			if err := os.MkdirAll(filepath.Join(dir, "locale"), 0o755); err != nil {
				return err
			}

			files := map[string]string{
				"go.mod":         scaffoldGoMod,
				"main.go":        scaffoldMain,
				"impl.go":        scaffoldImpl,
				"impl_test.go":   scaffoldImplTest,
				"skill.conf":     scaffoldConf,
				"locale/de.yaml": scaffoldCatalogDE,
				"locale/en.yaml": scaffoldCatalogEN,
			}
			for file, content := range files {
				path := filepath.Join(dir, file)
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists", path)
				}
				content = strings.ReplaceAll(content, "{{name}}", name)
				if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
					return err
				}
			}

			okLabel.Fprintf(cmd.OutOrStdout(), "Created skill project %s\n", name)
			cmd.Printf("Next steps:\n  cd %s\n  go mod tidy\n  vs run\n", dir)
			return nil
		},
	}
}

const scaffoldGoMod = `module {{name}}

go 1.23

require github.com/telekom/voice-skill-sdk v1.0.0
`

const scaffoldMain = `package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/telekom/voice-skill-sdk/config"
	"github.com/telekom/voice-skill-sdk/skill"
)

func main() {
	conf := os.Getenv("SKILL_CONF")
	if conf == "" {
		conf = config.DefaultConfigFile
	}
	if err := config.Load(conf); err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	s, err := skill.New()
	if err != nil {
		log.Fatal().Err(err).Msg("creating skill")
	}
	if err := s.Include("SMALLTALK__GREETINGS", handleGreetings); err != nil {
		log.Fatal().Err(err).Msg("registering intents")
	}

	if err := s.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("running skill")
	}
}
`

const scaffoldImpl = `package main

import (
	"context"

	"github.com/telekom/voice-skill-sdk/intents"
	"github.com/telekom/voice-skill-sdk/responses"
)

func handleGreetings(ctx context.Context, req *intents.Request) (*responses.Response, error) {
	return responses.TellMessage(req.T.GetText("HELLOAPP_HELLO")), nil
}
`

const scaffoldImplTest = `package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telekom/voice-skill-sdk/intents"
)

func TestHandleGreetings(t *testing.T) {
	rsp, err := handleGreetings(context.Background(), intents.NewTestRequest("SMALLTALK__GREETINGS", nil))
	require.NoError(t, err)
	assert.Equal(t, "HELLOAPP_HELLO", rsp.Text)
}
`

const scaffoldConf = `name = "{{name}}"
title = "{{name}}"
version = 1
debug = true

[http]
port = 4242
requests_timeout = "12s"

[auth]
scheme = "basic"
user = "cvi"
key = "${SKILL_API_KEY:}"

[log]
level = "debug"
format = "human"

[i18n]
dir = "locale"
`

const scaffoldCatalogDE = `HELLOAPP_HELLO:
  - Hallo Welt!
AND:
  - und
`

const scaffoldCatalogEN = `HELLOAPP_HELLO:
  - Hello world!
AND:
  - and
`
