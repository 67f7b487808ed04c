package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var cliLog = commonlog.GetLogger("combinate.cli")

// initConfig binds the persistent flags to viper, so that each of them can
// also be set through a COMBINATE_ environment variable, and configures
// logging from the result.
func initConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("COMBINATE")
	viper.AutomaticEnv()

	flags := cmd.Root().PersistentFlags()
	if err := viper.BindPFlag("verbose", flags.Lookup("verbose")); err != nil {
		return fmt.Errorf("bind verbose: %w", err)
	}
	if err := viper.BindPFlag("log_file", flags.Lookup("log-file")); err != nil {
		return fmt.Errorf("bind log-file: %w", err)
	}

	var logFile *string
	if path := viper.GetString("log_file"); path != "" {
		logFile = &path
	}
	commonlog.Configure(viper.GetInt("verbose"), logFile)
	cliLog.Debugf("configured logging at verbosity %d", viper.GetInt("verbose"))
	return nil
}
