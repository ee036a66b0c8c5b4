package vald

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/axelarnetwork/dicegame/vald/config"
)

type contextKey struct{}

// Context holds the configuration source and logger shared by all commands
type Context struct {
	Viper  *viper.Viper
	Logger log.Logger
}

// NewDefaultContext returns a context with an empty configuration and a no-op logger
func NewDefaultContext() *Context {
	return &Context{
		Viper:  viper.New(),
		Logger: log.NewNopLogger(),
	}
}

// SetCmdContext attaches ctx to the command so subcommands can retrieve it
func SetCmdContext(cmd *cobra.Command, ctx *Context) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	cmd.SetContext(context.WithValue(parent, contextKey{}, ctx))
}

// GetContextFromCmd returns the context attached to the command or one of its parents
func GetContextFromCmd(cmd *cobra.Command) *Context {
	if cmd.Context() != nil {
		if ctx, ok := cmd.Context().Value(contextKey{}).(*Context); ok {
			return ctx
		}
	}

	return NewDefaultContext()
}

// ValdConfig reads the daemon configuration on top of the defaults
func (c *Context) ValdConfig() (config.ValdConfig, error) {
	valdCfg := config.DefaultValdConfig()
	if err := c.Viper.Unmarshal(&valdCfg, config.AddDecodeHooks); err != nil {
		return config.ValdConfig{}, fmt.Errorf("failed to read configuration: %w", err)
	}

	return valdCfg, nil
}
