// rotcalc is a CLI for converting and interpolating 3D rotations between
// quaternion, Euler-angle, axis-angle and matrix form.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/quatkit/internal/config"
	"github.com/Faultbox/quatkit/internal/logger"
)

const version = "v0.3.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands of one invocation.
type app struct {
	flags *config.Flags
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "rotcalc",
		Short: "Convert and interpolate 3D rotations",
		Long: `rotcalc converts rotations between quaternion (x y z w), Euler angle
(pitch roll yaw), axis-angle and 4x4 rotation matrix form, and interpolates
between quaternions with slerp.

Angles are read and printed in degrees unless --radians is given or the
config file sets output.angle_unit to rad. Put "--" before the arguments
when any of them is negative.`,
		Example: `  rotcalc euler2quat 0 90 0
  rotcalc quat2euler -- 0 0 -0.7071068 0.7071068
  rotcalc slerp 0 0 0 1  0 1 0 0  0.5
  rotcalc --radians axisangle 0.3 0.2 1.1`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	a.flags = config.BindFlags(root.PersistentFlags())
	root.MarkFlagsMutuallyExclusive("radians", "degrees")

	root.AddCommand(
		a.euler2QuatCmd(),
		a.quat2EulerCmd(),
		a.axisAngleCmd(),
		a.fromAxisCmd(),
		a.betweenCmd(),
		a.slerpCmd(),
		a.fromMatrixCmd(),
		a.boundsCmd(),
		a.trackCmd(),
		a.configCmd(),
	)
	return root
}

// init loads configuration and starts the logger before any subcommand runs.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg

	opts := logger.Options{
		Level:   cfg.Logging.Level,
		Console: cmd.ErrOrStderr(),
		JSON:    cfg.Logging.JSON,
	}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithOptions(opts); err != nil {
		return err
	}

	logger.Debug("rotcalc starting",
		zap.String("version", version),
		zap.String("command", cmd.CommandPath()),
		zap.String("angle_unit", cfg.Output.AngleUnit),
	)
	return nil
}
