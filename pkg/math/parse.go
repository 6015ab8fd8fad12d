package math

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrArrayLength is returned when a textual vector has the wrong number of
// components.
var ErrArrayLength = errors.New("wrong number of components")

// ParseFloats parses each string as a float32.
func ParseFloats(fields []string) ([]float32, error) {
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

// parseN parses exactly n floats.
func parseN(fields []string, n int) ([]float32, error) {
	if len(fields) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrArrayLength, len(fields), n)
	}
	return ParseFloats(fields)
}

// ParseQuat parses four strings ordered x, y, z, w.
func ParseQuat(fields []string) (Quat, error) {
	v, err := parseN(fields, 4)
	if err != nil {
		return Quat{}, err
	}
	return QuatFromArray(v), nil
}

// ParseEuler parses three strings ordered pitch, roll, yaw.
func ParseEuler(fields []string) (Euler, error) {
	v, err := parseN(fields, 3)
	if err != nil {
		return Euler{}, err
	}
	return EulerFromArray(v), nil
}

// ParseVec3 parses three strings ordered x, y, z.
func ParseVec3(fields []string) (Vec3, error) {
	v, err := parseN(fields, 3)
	if err != nil {
		return Vec3{}, err
	}
	return Vec3{v[0], v[1], v[2]}, nil
}

// ParseMat4 parses sixteen column-major strings.
func ParseMat4(fields []string) (Mat4, error) {
	v, err := parseN(fields, 16)
	if err != nil {
		return Mat4{}, err
	}
	var m Mat4
	copy(m[:], v)
	return m, nil
}
