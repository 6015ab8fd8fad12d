package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/quatkit/internal/logger"
	"github.com/Faultbox/quatkit/pkg/math"
)

// unitTolerance is how far a quaternion length may drift from 1 before
// quat2euler warns about it.
const unitTolerance = 1e-3

// angleIn converts an angle argument from the configured unit to radians.
func (a *app) angleIn(v float32) float32 {
	if a.cfg.Degrees() {
		return math.ToRadians(v)
	}
	return v
}

func (a *app) eulerArg(args []string) (math.Euler, error) {
	e, err := math.ParseEuler(args)
	if err != nil {
		return math.Euler{}, err
	}
	if a.cfg.Degrees() {
		e = e.ToRadians()
	}
	return e, nil
}

func (a *app) euler2QuatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "euler2quat <pitch> <roll> <yaw>",
		Short: "Convert Euler angles to a quaternion",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.eulerArg(args)
			if err != nil {
				return fmt.Errorf("euler2quat: %w", err)
			}
			q := e.ToQuat()
			logger.Named("euler2quat").Debug("converted",
				zap.Stringer("euler", e), zap.Stringer("quat", q))
			return a.printer(cmd).quat(q)
		},
	}
}

func (a *app) quat2EulerCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "quat2euler <x> <y> <z> <w>",
		Short: "Convert a quaternion to Euler angles",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.Named("quat2euler")
			q, err := math.ParseQuat(args)
			if err != nil {
				return fmt.Errorf("quat2euler: %w", err)
			}
			if l := q.Length(); !raw && !math.IsNearEqual(l, 1, unitTolerance) {
				log.Warn("normalizing non-unit quaternion", zap.Float32("length", l))
				q.Normalize()
			}
			e := q.ToEuler()
			log.Debug("converted", zap.Stringer("quat", q), zap.Stringer("euler", e))
			return a.printer(cmd).euler(e)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Do not normalize the quaternion first")
	return cmd
}

func (a *app) axisAngleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "axisangle <pitch> <roll> <yaw>",
		Short: "Convert Euler angles to an axis and angle",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.eulerArg(args)
			if err != nil {
				return fmt.Errorf("axisangle: %w", err)
			}
			aa := e.ToAxisAngle()
			logger.Named("axisangle").Debug("converted",
				zap.Stringer("euler", e), zap.Float32s("axis_angle", aa[:]))
			return a.printer(cmd).axisAngle(aa)
		},
	}
}

func (a *app) fromAxisCmd() *cobra.Command {
	var normalize bool
	cmd := &cobra.Command{
		Use:   "fromaxis <ax> <ay> <az> <angle>",
		Short: "Build a quaternion from a unit axis and an angle",
		Long: `fromaxis builds a quaternion from a rotation axis and an angle.
The axis must have unit length unless --normalize is given.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, err := math.ParseVec3(args[:3])
			if err != nil {
				return fmt.Errorf("fromaxis: %w", err)
			}
			v, err := math.ParseFloats(args[3:])
			if err != nil {
				return fmt.Errorf("fromaxis: angle: %w", err)
			}
			angle := a.angleIn(v[0])

			if normalize {
				if axis.LengthSq() == 0 {
					return errors.New("fromaxis: axis has zero length")
				}
				axis = axis.Normalize()
			}
			q, err := math.QuatFromAxisAngleStrict(axis, angle)
			if err != nil {
				return fmt.Errorf("fromaxis: %w", err)
			}
			logger.Named("fromaxis").Debug("converted",
				zap.Stringer("axis", axis), zap.Float32("angle", angle), zap.Stringer("quat", q))
			return a.printer(cmd).quat(q)
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Normalize the axis instead of rejecting it")
	return cmd
}

func (a *app) betweenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "between <fx> <fy> <fz> <tx> <ty> <tz>",
		Short: "Quaternion rotating one direction onto another",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := math.ParseVec3(args[:3])
			if err != nil {
				return fmt.Errorf("between: from: %w", err)
			}
			to, err := math.ParseVec3(args[3:])
			if err != nil {
				return fmt.Errorf("between: to: %w", err)
			}
			if from.LengthSq() == 0 || to.LengthSq() == 0 {
				return errors.New("between: direction has zero length")
			}
			q := math.QuatFromUnitVectors(from.Normalize(), to.Normalize())
			logger.Named("between").Debug("converted",
				zap.Stringer("from", from), zap.Stringer("to", to), zap.Stringer("quat", q))
			return a.printer(cmd).quat(q)
		},
	}
}

func (a *app) slerpCmd() *cobra.Command {
	var (
		steps    int
		shortest bool
	)
	cmd := &cobra.Command{
		Use:   "slerp <ax> <ay> <az> <aw> <bx> <by> <bz> <bw> [t]",
		Short: "Spherically interpolate between two quaternions",
		Long: `slerp interpolates from quaternion a to quaternion b at parameter t.
With --steps N, t is omitted and N+1 evenly spaced samples from 0 to 1
are printed instead.`,
		Args: cobra.RangeArgs(8, 9),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.Named("slerp")
			qa, err := math.ParseQuat(args[:4])
			if err != nil {
				return fmt.Errorf("slerp: a: %w", err)
			}
			qb, err := math.ParseQuat(args[4:8])
			if err != nil {
				return fmt.Errorf("slerp: b: %w", err)
			}
			if shortest && qa.Dot(qb) < 0 {
				qb.Negate()
			}

			var ts []float32
			switch {
			case len(args) == 9 && steps > 0:
				return errors.New("slerp: t and --steps are mutually exclusive")
			case len(args) == 9:
				v, err := math.ParseFloats(args[8:])
				if err != nil {
					return fmt.Errorf("slerp: t: %w", err)
				}
				ts = v
			case steps > 0:
				for i := 0; i <= steps; i++ {
					ts = append(ts, float32(i)/float32(steps))
				}
			default:
				return errors.New("slerp: missing t (or --steps)")
			}

			p := a.printer(cmd)
			var qm math.Quat
			for _, t := range ts {
				math.SlerpInto(qa, qb, &qm, t)
				log.Debug("sample", zap.Float32("t", t), zap.Stringer("quat", qm))
				if err := p.quat(qm); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "Print N+1 samples from t=0 to t=1")
	cmd.Flags().BoolVar(&shortest, "shortest", false, "Negate b when needed so the shorter arc is taken")
	return cmd
}

func (a *app) fromMatrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frommatrix <m0> ... <m15>",
		Short: "Extract a quaternion from a column-major 4x4 rotation matrix",
		Args:  cobra.ExactArgs(16),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := math.ParseMat4(args)
			if err != nil {
				return fmt.Errorf("frommatrix: %w", err)
			}
			q := math.QuatFromRotationMatrix(m)
			logger.Named("frommatrix").Debug("converted",
				zap.Float32s("matrix", m[:]), zap.Stringer("quat", q))
			return a.printer(cmd).quat(q)
		},
	}
}

func (a *app) boundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds <x1> <y1> [<x2> <y2> ...]",
		Short: "Axis-aligned bounding rectangle of a set of 2D points",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 || len(args)%2 != 0 {
				return fmt.Errorf("bounds: need an even number of coordinates, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := math.ParseFloats(args)
			if err != nil {
				return fmt.Errorf("bounds: %w", err)
			}
			points := make([]math.Vec2, 0, len(v)/2)
			for i := 0; i < len(v); i += 2 {
				points = append(points, math.Vec2{X: v[i], Y: v[i+1]})
			}
			r := math.RectFromPoints(points)
			logger.Named("bounds").Debug("computed",
				zap.Int("points", len(points)), zap.Any("rect", r))
			return a.printer(cmd).rect(r)
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the configuration file",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeYAML(cmd.OutOrStdout(), a.cfg)
		},
	}

	var path string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if path != "" {
				err = a.cfg.SaveTo(path)
			} else {
				path, err = a.cfg.Save()
			}
			if err != nil {
				return fmt.Errorf("config init: %w", err)
			}
			logger.Info("config written", zap.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "", "Write to this path instead of the user config directory")

	cmd.AddCommand(show, initCmd)
	return cmd
}
