package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/quatkit/internal/logger"
	"github.com/Faultbox/quatkit/pkg/math"
)

// trackFile is the YAML layout read by the track command. Each key gives
// its rotation either as a quaternion or as Euler angles, and optionally
// a scale.
type trackFile struct {
	Keys []struct {
		Time  float32   `yaml:"time"`
		Quat  []float32 `yaml:"quat,flow"`
		Euler []float32 `yaml:"euler,flow"`
		Scale []float32 `yaml:"scale,flow"`
	} `yaml:"keys"`
}

func (a *app) loadTrack(path string) (math.RotTrack, math.ScaleTrack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var f trackFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, err
	}

	track := make(math.RotTrack, 0, len(f.Keys))
	var scales math.ScaleTrack
	for i, k := range f.Keys {
		var q math.Quat
		switch {
		case len(k.Quat) == 4 && k.Euler == nil:
			q = math.QuatFromArray(k.Quat)
			q.Normalize()
		case len(k.Euler) == 3 && k.Quat == nil:
			e := math.EulerFromArray(k.Euler)
			if a.cfg.Degrees() {
				e = e.ToRadians()
			}
			q = e.ToQuat()
		default:
			return nil, nil, fmt.Errorf("key %d: need exactly one of quat (4 values) or euler (3 values)", i)
		}
		track = append(track, math.RotKey{Time: k.Time, Rot: q})

		switch len(k.Scale) {
		case 0:
		case 3:
			scales = append(scales, math.ScaleKey{Time: k.Time, Scale: math.Vec3{X: k.Scale[0], Y: k.Scale[1], Z: k.Scale[2]}})
		default:
			return nil, nil, fmt.Errorf("key %d: scale needs 3 values, got %d", i, len(k.Scale))
		}
	}
	if !track.Sorted() {
		return nil, nil, errors.New("keys are not sorted by time")
	}
	return track, scales, nil
}

func (a *app) trackCmd() *cobra.Command {
	var euler bool
	cmd := &cobra.Command{
		Use:   "track <file.yaml> <time>...",
		Short: "Sample a rotation keyframe track",
		Long: `track reads rotation keyframes from a YAML file and prints the slerped
rotation at each requested time. Times outside the keyed range hold the
first or last key. When keys carry a scale, the interpolated scale is
printed after each rotation.

  keys:
    - time: 0
      quat: [0, 0, 0, 1]
    - time: 100
      euler: [0, 0, 90]
      scale: [2, 2, 2]

Euler keys use the configured angle unit.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.Named("track")
			track, scales, err := a.loadTrack(args[0])
			if err != nil {
				return fmt.Errorf("track: %s: %w", args[0], err)
			}
			times, err := math.ParseFloats(args[1:])
			if err != nil {
				return fmt.Errorf("track: time: %w", err)
			}
			log.Debug("loaded track", zap.String("path", args[0]), zap.Int("keys", len(track)),
				zap.Int("scale_keys", len(scales)), zap.Bool("animated", math.Animated(track, scales)))

			p := a.printer(cmd)
			var q math.Quat
			for _, t := range times {
				track.SampleInto(&q, t)
				log.Debug("sample", zap.Float32("time", t), zap.Stringer("quat", q))
				if euler {
					err = p.euler(q.ToEuler())
				} else {
					err = p.quat(q)
				}
				if err != nil {
					return err
				}
				if len(scales) > 0 {
					if err := p.scale(scales.Sample(t)); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&euler, "euler", false, "Print samples as Euler angles")
	return cmd
}
