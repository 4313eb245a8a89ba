package config

import "github.com/eventdesk/eventdesk/internal/imaging"

// ImagingConfig contains the thumbnail pipeline configuration.
type ImagingConfig struct {
	// MaxWidth and MaxHeight bound the encoded thumbnail; sources are
	// downscaled to fit, never upscaled.
	MaxWidth  int `env:"MAX_WIDTH"  envDefault:"1200"`
	MaxHeight int `env:"MAX_HEIGHT" envDefault:"1200"`

	// Quality is the re-encode quality in (0, 1].
	Quality float64 `env:"QUALITY" envDefault:"0.8"`

	// TargetFormat is the re-encode target: "jpeg" or "png".
	TargetFormat string `env:"TARGET_FORMAT" envDefault:"jpeg"`

	// SizeCeilingBytes bounds the encoded payload; thumbnails still over it
	// after resize and re-encode are rejected.
	SizeCeilingBytes int `env:"SIZE_CEILING_BYTES" envDefault:"1048576"`
}

// Sanitize applies guardrails to imaging configuration values.
func (i *ImagingConfig) Sanitize() {
	if i.MaxWidth <= 0 {
		i.MaxWidth = imaging.DefaultMaxWidth
	}
	if i.MaxHeight <= 0 {
		i.MaxHeight = imaging.DefaultMaxHeight
	}
	if i.Quality <= 0 || i.Quality > 1 {
		i.Quality = imaging.DefaultQuality
	}
	if i.TargetFormat != string(imaging.FormatJPEG) && i.TargetFormat != string(imaging.FormatPNG) {
		i.TargetFormat = string(imaging.FormatJPEG)
	}
	if i.SizeCeilingBytes <= 0 {
		i.SizeCeilingBytes = imaging.DefaultSizeCeilingBytes
	}
}

// Options converts the configuration into pipeline options.
func (i ImagingConfig) Options() imaging.Options {
	return imaging.Options{
		MaxWidth:         i.MaxWidth,
		MaxHeight:        i.MaxHeight,
		Quality:          i.Quality,
		TargetFormat:     imaging.Format(i.TargetFormat),
		SizeCeilingBytes: i.SizeCeilingBytes,
	}
}
