package systems

import (
	"image/color"
	"math"
	"math/rand"
)

// normalizeAngle wraps an angle to [-Pi, Pi].
func normalizeAngle(angle float32) float32 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// randSign returns -1 or +1 with equal probability.
func randSign(rng *rand.Rand) float64 {
	return float64(rng.Intn(2))*2 - 1
}

// randChannel returns a color channel in [0, 254].
func randChannel(rng *rand.Rand) uint8 {
	return uint8(math.Floor(rng.Float64() * 255))
}

// randRGB returns a random color with the given alpha.
func randRGB(rng *rand.Rand, alpha uint8) color.RGBA {
	return color.RGBA{R: randChannel(rng), G: randChannel(rng), B: randChannel(rng), A: alpha}
}

// alpha8 converts an opacity in [0,1] to a channel value.
func alpha8(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(a * 255)
}
