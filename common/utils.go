package common

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

type Vec3 = mgl64.Vec3
type Vec2 = mgl64.Vec2
type Mat4 = mgl64.Mat4
type Quat = mgl64.Quat

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type IIndex interface {
	~int | ~int8 | ~int16 | ~int32 | ~uint | ~uint8 | ~uint16 | ~uint32
}

func AssertTrue(ok bool, msgs ...any) {
	if !ok {
		if len(msgs) > 0 {
			panic(fmt.Sprint(msgs...))
		}
		panic("assertion failed")
	}
}

// Prev returns the previous index of a closed ring of n elements.
func Prev[T IIndex](i, n T) T {
	if i > 0 {
		return i - 1
	}
	return n - 1
}

// Next returns the next index of a closed ring of n elements.
func Next[T IIndex](i, n T) T {
	if i+1 < n {
		return i + 1
	}
	return 0
}
