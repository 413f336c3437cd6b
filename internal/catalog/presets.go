package catalog

import "github.com/highvelocity/arctuner/internal/domain"

// Presets returns the built-in setting bundles. Every key must resolve
// to a catalog definition; catalog_test enforces that.
func Presets() []domain.Preset {
	return []domain.Preset{
		{
			Name:        "Competitive",
			Description: "Maximum FPS and lowest latency for competitive play",
			Settings: map[string]string{
				"DLSSMode":                       "Performance",
				"DLSSFrameGenerationMode":        "Off",
				"NvReflexMode":                   "Enabled+Boost",
				"RTXGIQuality":                   "Static",
				"RTXGIResolutionQuality":         "0",
				"FullscreenMode":                 "0",
				"bUseVSync":                      "False",
				"MotionBlurEnabled":              "False",
				"LensDistortionEnabled":          "False",
				"sg.FoliageQuality":              "0",
				"sg.ShadowQuality":               "1",
				"sg.EffectsQuality":              "1",
				"sg.PostProcessQuality":          "1",
				"sg.ViewDistanceQuality":         "3",
				"bEnableMouseSmoothing":          "False",
				"bEnableMouseSmoothing.Engine":   "False",
				"bViewAccelerationEnabled":       "False",
				"r.DepthOfFieldQuality":          "0",
				"r.BloomQuality":                 "0",
				"r.LensFlareQuality":             "0",
				"r.SceneColorFringe.Max":         "0",
				"r.Tonemapper.GrainQuantization": "0",
				"r.Vignette.Quality":             "0",
				"r.MaxAnisotropy":                "16",
				"AudioQualityLevel":              "3",
				"bEnableAudioSpatialisation":     "True",
			},
		},
		{
			Name:        "Balanced",
			Description: "Good visuals with solid performance",
			Settings: map[string]string{
				"DLSSMode":                "Quality",
				"DLSSFrameGenerationMode": "Off",
				"NvReflexMode":            "Enabled",
				"RTXGIQuality":            "DynamicHigh",
				"RTXGIResolutionQuality":  "2",
				"FullscreenMode":          "1",
				"bUseVSync":               "False",
				"MotionBlurEnabled":       "False",
				"LensDistortionEnabled":   "False",
				"sg.FoliageQuality":       "2",
				"sg.ShadowQuality":        "2",
				"sg.EffectsQuality":       "2",
				"sg.PostProcessQuality":   "2",
				"sg.ViewDistanceQuality":  "3",
			},
		},
		{
			Name:        "Quality",
			Description: "Maximum visual quality",
			Settings: map[string]string{
				"DLSSMode":                "DLAA",
				"DLSSFrameGenerationMode": "Off",
				"NvReflexMode":            "Enabled",
				"RTXGIQuality":            "DynamicEpic",
				"RTXGIResolutionQuality":  "3",
				"FullscreenMode":          "1",
				"bUseVSync":               "False",
				"MotionBlurEnabled":       "False",
				"LensDistortionEnabled":   "True",
				"sg.FoliageQuality":       "3",
				"sg.ShadowQuality":        "3",
				"sg.EffectsQuality":       "3",
				"sg.PostProcessQuality":   "3",
				"sg.ViewDistanceQuality":  "4",
			},
		},
		{
			Name:        "Cinematic",
			Description: "Best visuals with frame generation for smooth playback",
			Settings: map[string]string{
				"DLSSMode":                "DLAA",
				"DLSSFrameGenerationMode": "On2X",
				"NvReflexMode":            "Enabled+Boost",
				"RTXGIQuality":            "DynamicEpic",
				"RTXGIResolutionQuality":  "3",
				"FullscreenMode":          "1",
				"bUseVSync":               "False",
				"MotionBlurEnabled":       "True",
				"LensDistortionEnabled":   "True",
				"sg.FoliageQuality":       "3",
				"sg.ShadowQuality":        "3",
				"sg.EffectsQuality":       "3",
				"sg.PostProcessQuality":   "3",
				"sg.ViewDistanceQuality":  "4",
			},
		},
	}
}
