package composer

import "context"

// Composer muxes an audio recording with a static background image
// into a playable video.
type Composer interface {
	Compose(ctx context.Context, audioPath, backgroundPath, outputPath string) error
	Duration(ctx context.Context, mediaPath string) (float64, error)
}
