package catalog

import "github.com/highvelocity/arctuner/internal/domain"

// Config file sections used by ARC Raiders (Unreal Engine 5).
const (
	SectionEmbark      = "/Script/EmbarkUserSettings.EmbarkGameUserSettings"
	SectionScalability = "ScalabilityGroups"
	SectionSystem      = "SystemSettings"
	SectionInput       = "/Script/Engine.InputSettings"
	SectionEngineGUS   = "/Script/Engine.GameUserSettings"
	SectionEngine      = "/Script/Engine.Engine"
)

func plain(values ...string) []domain.ChoiceOption {
	out := make([]domain.ChoiceOption, len(values))
	for i, v := range values {
		out[i] = domain.ChoiceOption{Value: v}
	}
	return out
}

func labeled(pairs ...string) []domain.ChoiceOption {
	out := make([]domain.ChoiceOption, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.ChoiceOption{Value: pairs[i], Label: pairs[i+1]})
	}
	return out
}

func qualityLevels() []domain.ChoiceOption {
	return labeled("0", "Low", "1", "Medium", "2", "High", "3", "Epic")
}

func qualityLevelsCinematic() []domain.ChoiceOption {
	return labeled("0", "Low", "1", "Medium", "2", "High", "3", "Epic", "4", "Cinematic")
}

// Definitions returns every known setting in catalog order. The table is
// data only; validation lives in CanonicalValue.
func Definitions() []domain.SettingDefinition {
	return []domain.SettingDefinition{
		// Upscaling
		{
			Key: "ResolutionScalingMethod", Section: SectionEmbark, Kind: domain.KindChoice,
			Options: plain("DLSS", "XeSS", "FSR3", "None"), Default: "DLSS",
			DisplayName: "Upscaling Technology",
			Description: "Choose which upscaling technology to use. DLSS (NVIDIA), XeSS (Intel), FSR (AMD), or None.",
			Impact:      domain.ImpactVeryHigh, Category: "Upscaling",
		},
		{
			Key: "DLSSMode", Section: SectionEmbark, Kind: domain.KindChoice,
			Options: plain("DLAA", "Quality", "Balanced", "Performance", "UltraPerformance"), Default: "Quality",
			DisplayName: "DLSS Quality Mode",
			Description: "DLAA=Native AA only (sharpest, slowest). Quality=67% render. Balanced=58%. Performance=50%. UltraPerformance=33% (maximum FPS, blurry).",
			Impact:      domain.ImpactVeryHigh, Category: "Upscaling",
		},
		{
			Key: "DLSSModel", Section: SectionEmbark, Kind: domain.KindChoice,
			Options: plain("Transformer", "CNN"), Default: "Transformer",
			DisplayName: "DLSS Model",
			Description: "Transformer (DLSS 4) provides better motion clarity and less ghosting. CNN is the older model with slightly better performance but more artifacts.",
			Impact:      domain.ImpactLow, Category: "Upscaling",
		},
		{
			Key: "XeSSMode", Section: SectionEmbark, Kind: domain.KindChoice,
			Options: plain("NativeAA", "UltraQualityPlus", "UltraQuality", "Quality", "Balanced", "Performance", "UltraPerformance"), Default: "Quality",
			DisplayName: "XeSS Quality Mode",
			Description: "Intel XeSS upscaling quality. Higher quality = lower performance.",
			Impact:      domain.ImpactVeryHigh, Category: "Upscaling",
		},
		{
			Key: "FSR3Mode", Section: SectionEmbark, Kind: domain.KindChoice,
			Options: plain("NativeAA", "Quality", "Balanced", "Performance", "UltraPerformance"), Default: "Balanced",
			DisplayName: "FSR 3 Quality Mode",
			Description: "AMD FSR upscaling quality. Works on all GPUs.",
			Impact:      domain.ImpactVeryHigh, Category: "Upscaling",
		},

		// Frame generation
		{
			Key: "DLSSFrameGenerationMode", Section: SectionEmbark, Kind: domain.KindChoice,
			Options: plain("Off", "On", "On2X", "On3X", "On4X"), Default: "Off",
			DisplayName: "DLSS Frame Generation",
			Description: "AI generates extra frames for smoother visuals. Adds 15-30ms input latency; Off recommended for competitive play.",
			Impact:      domain.ImpactVeryHigh, Category: "Frame Generation",
		},
		{
			Key: "FSR3FrameGenerationMode", Section: SectionEmbark, Kind: domain.KindChoice,
			Options: plain("Off", "On"), Default: "Off",
			DisplayName: "FSR 3 Frame Generation",
			Description: "AMD frame generation. Works on all GPUs but adds latency.",
			Impact:      domain.ImpactVeryHigh, Category: "Frame Generation",
		},

		// Latency
		{
			Key: "NvReflexMode", Section: SectionEmbark, Kind: domain.KindChoice,
			Options: plain("Disabled", "Enabled", "Enabled+Boost"), Default: "Enabled",
			DisplayName: "NVIDIA Reflex",
			Description: "Reduces input latency by 20-50%. Enabled+Boost keeps GPU clocks high for CPU-bound scenarios.",
			Impact:      domain.ImpactLow, Category: "Latency",
		},
		{
			Key: "ReflexLatewarpMode", Section: SectionEmbark, Kind: domain.KindChoice,
			Options: plain("Off", "On"), Default: "Off",
			DisplayName: "Reflex Frame Warp",
			Description: "Reflex 2 feature that warps frames at display time. Can reduce latency by an additional 50% but may cause visual artifacts.",
			Impact:      domain.ImpactLow, Category: "Latency",
		},
		{
			Key: "bAntiLag2Enabled", Section: SectionEmbark, Kind: domain.KindBoolean, Default: "True",
			DisplayName: "AMD Anti-Lag 2",
			Description: "AMD's latency reduction. Only works on AMD RDNA GPUs.",
			Impact:      domain.ImpactLow, Category: "Latency",
		},

		// Ray tracing
		{
			Key: "RTXGIQuality", Section: SectionEmbark, Kind: domain.KindChoice,
			Options: plain("Static", "DynamicLow", "DynamicMedium", "DynamicHigh", "DynamicEpic"), Default: "DynamicHigh",
			DisplayName: "RTX Global Illumination",
			Description: "Ray-traced indirect lighting. Static=off (best performance). DynamicEpic costs 25-45% performance.",
			Impact:      domain.ImpactVeryHigh, Category: "Ray Tracing",
		},
		{
			Key: "RTXGIResolutionQuality", Section: SectionEmbark, Kind: domain.KindChoice,
			Options: qualityLevels(), Default: "3",
			DisplayName: "RTX GI Resolution",
			Description: "Resolution of global illumination calculations. 0=Low, 3=Epic.",
			Impact:      domain.ImpactHigh, Category: "Ray Tracing",
		},

		// Display
		{
			Key: "FullscreenMode", Section: SectionEmbark, Kind: domain.KindChoice,
			Options: labeled("0", "Exclusive Fullscreen", "1", "Borderless Windowed", "2", "Windowed"), Default: "1",
			DisplayName: "Fullscreen Mode",
			Description: "Exclusive=lowest latency but slow Alt+Tab. Borderless=seamless window integration.",
			Impact:      domain.ImpactLow, Category: "Display",
		},
		{
			Key: "bUseVSync", Section: SectionEmbark, Kind: domain.KindBoolean, Default: "False",
			DisplayName: "VSync",
			Description: "Synchronizes frames to monitor refresh. OFF recommended with Reflex for lowest latency.",
			Impact:      domain.ImpactMedium, Category: "Display",
		},
		{
			Key: "FrameRateLimit", Section: SectionEmbark, Kind: domain.KindNumber, Min: 0, Max: 500, Default: "0",
			DisplayName: "Frame Rate Limit",
			Description: "0=Unlimited. Set slightly below monitor refresh for G-Sync/FreeSync.",
			Impact:      domain.ImpactMedium, Category: "Display",
		},
		{
			Key: "bUseHDRDisplayOutput", Section: SectionEmbark, Kind: domain.KindBoolean, Default: "False",
			DisplayName: "HDR Output",
			Description: "Enable HDR if your monitor supports it. Provides wider color range and brightness.",
			Impact:      domain.ImpactLow, Category: "Display",
		},

		// Visual effects
		{
			Key: "MotionBlurEnabled", Section: SectionEmbark, Kind: domain.KindBoolean, Default: "False",
			DisplayName: "Motion Blur",
			Description: "Blurs fast-moving objects. OFF recommended for competitive play.",
			Impact:      domain.ImpactLow, Category: "Visual Effects",
		},
		{
			Key: "LensDistortionEnabled", Section: SectionEmbark, Kind: domain.KindBoolean, Default: "False",
			DisplayName: "Lens Distortion",
			Description: "Simulates camera lens curvature. OFF for clearer image edges.",
			Impact:      domain.ImpactLow, Category: "Visual Effects",
		},

		// Scalability groups
		{
			Key: "sg.ViewDistanceQuality", Section: SectionScalability, Kind: domain.KindChoice,
			Options: qualityLevelsCinematic(), Default: "3",
			DisplayName: "View Distance",
			Description: "How far objects render before LOD/culling. Higher=see farther, more GPU load.",
			Impact:      domain.ImpactMedium, Category: "Quality Settings",
		},
		{
			Key: "sg.ShadowQuality", Section: SectionScalability, Kind: domain.KindChoice,
			Options: qualityLevels(), Default: "3",
			DisplayName: "Shadow Quality",
			Description: "Shadow resolution and filtering. 0=512px, 3=4096px shadows.",
			Impact:      domain.ImpactHigh, Category: "Quality Settings",
		},
		{
			Key: "sg.TextureQuality", Section: SectionScalability, Kind: domain.KindChoice,
			Options: qualityLevels(), Default: "3",
			DisplayName: "Texture Quality",
			Description: "Texture resolution. Affects VRAM usage more than FPS.",
			Impact:      domain.ImpactLow, Category: "Quality Settings",
		},
		{
			Key: "sg.EffectsQuality", Section: SectionScalability, Kind: domain.KindChoice,
			Options: qualityLevels(), Default: "3",
			DisplayName: "Effects Quality",
			Description: "Particle counts, explosions, physics debris complexity.",
			Impact:      domain.ImpactMedium, Category: "Quality Settings",
		},
		{
			Key: "sg.FoliageQuality", Section: SectionScalability, Kind: domain.KindChoice,
			Options: qualityLevels(), Default: "3",
			DisplayName: "Foliage Quality",
			Description: "Grass and tree density. Low=sparse vegetation (competitive advantage).",
			Impact:      domain.ImpactHigh, Category: "Quality Settings",
		},
		{
			Key: "sg.PostProcessQuality", Section: SectionScalability, Kind: domain.KindChoice,
			Options: qualityLevels(), Default: "3",
			DisplayName: "Post Processing",
			Description: "Bloom, lens flares, color grading, depth of field.",
			Impact:      domain.ImpactLow, Category: "Quality Settings",
		},
		{
			Key: "sg.ReflectionQuality", Section: SectionScalability, Kind: domain.KindChoice,
			Options: qualityLevels(), Default: "3",
			DisplayName: "Reflection Quality",
			Description: "Screen-space reflections and reflection probe quality.",
			Impact:      domain.ImpactMedium, Category: "Quality Settings",
		},
		{
			Key: "sg.ShadingQuality", Section: SectionScalability, Kind: domain.KindChoice,
			Options: qualityLevels(), Default: "3",
			DisplayName: "Shading Quality",
			Description: "Material complexity, subsurface scattering for skin and hair.",
			Impact:      domain.ImpactMedium, Category: "Quality Settings",
		},
		{
			Key: "sg.GlobalIlluminationQuality", Section: SectionScalability, Kind: domain.KindChoice,
			Options: qualityLevels(), Default: "3",
			DisplayName: "Global Illumination",
			Description: "Indirect lighting quality (non-RTX fallback).",
			Impact:      domain.ImpactMedium, Category: "Quality Settings",
		},
		{
			Key: "sg.AntiAliasingQuality", Section: SectionScalability, Kind: domain.KindChoice,
			Options: qualityLevels(), Default: "3",
			DisplayName: "Anti-Aliasing Quality",
			Description: "TAA sample count. Often overridden by DLSS/XeSS/FSR.",
			Impact:      domain.ImpactLow, Category: "Quality Settings",
		},
		{
			Key: "sg.ResolutionQuality", Section: SectionScalability, Kind: domain.KindNumber, Min: 25, Max: 100, Default: "100",
			DisplayName: "Resolution Scale %",
			Description: "Internal render resolution percentage. Usually controlled by the upscaler.",
			Impact:      domain.ImpactVeryHigh, Category: "Quality Settings",
		},

		// Competitive: mouse and input
		{
			Key: "bEnableMouseSmoothing", Section: SectionInput, Kind: domain.KindBoolean, Default: "False",
			DisplayName: "Mouse Smoothing",
			Description: "Interpolates mouse movement, causing input lag and inconsistent aim. Always OFF for best responsiveness.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},
		{
			Key: "bViewAccelerationEnabled", Section: SectionInput, Kind: domain.KindBoolean, Default: "False",
			DisplayName: "Mouse Acceleration",
			Description: "Changes sensitivity based on movement speed. Always OFF for consistent muscle memory.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},
		{
			// Same file key as the InputSettings toggle, different section.
			Key: "bEnableMouseSmoothing.Engine", FileKey: "bEnableMouseSmoothing",
			Section: SectionEngineGUS, Kind: domain.KindBoolean, Default: "False",
			DisplayName: "Engine Mouse Smoothing",
			Description: "Secondary mouse smoothing setting in the engine config. Disable both this and the InputSettings version.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},

		// Competitive: visual clutter reduction
		{
			Key: "r.DepthOfFieldQuality", Section: SectionSystem, Kind: domain.KindChoice,
			Options: labeled("0", "Off (Competitive)", "1", "Low", "2", "High"), Default: "0",
			DisplayName: "Depth of Field",
			Description: "Blurs objects at different distances. 0=OFF recommended for competitive play.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},
		{
			Key: "r.BloomQuality", Section: SectionSystem, Kind: domain.KindChoice,
			Options: labeled("0", "Off (Competitive)", "1", "Low", "2", "Medium", "3", "High", "4", "Epic"), Default: "0",
			DisplayName: "Bloom Quality",
			Description: "Glow around bright objects. 0=OFF reduces visual noise and improves target visibility.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},
		{
			Key: "r.LensFlareQuality", Section: SectionSystem, Kind: domain.KindChoice,
			Options: labeled("0", "Off (Competitive)", "1", "Low", "2", "High"), Default: "0",
			DisplayName: "Lens Flare",
			Description: "Simulated camera lens flare. Can obscure enemies near light sources.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},
		{
			Key: "r.SceneColorFringe.Max", Section: SectionSystem, Kind: domain.KindChoice,
			Options: labeled("0", "Off (Competitive)", "0.5", "Low", "1", "Full"), Default: "0",
			DisplayName: "Chromatic Aberration",
			Description: "Color fringing at screen edges. 0=OFF for cleaner image and better edge clarity.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},
		{
			Key: "r.Tonemapper.Sharpen", Section: SectionSystem, Kind: domain.KindNumber, Min: 0, Max: 2, Default: "0",
			DisplayName: "Sharpening",
			Description: "Post-process sharpening filter. 0=OFF (use upscaler sharpening instead). Higher values may cause artifacts.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},
		{
			Key: "r.Tonemapper.GrainQuantization", Section: SectionSystem, Kind: domain.KindChoice,
			Options: labeled("0", "Off (Competitive)", "1", "On"), Default: "0",
			DisplayName: "Film Grain Quantization",
			Description: "Film grain noise effect. 0=OFF for a cleaner image.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},
		{
			Key: "r.Vignette.Quality", Section: SectionSystem, Kind: domain.KindChoice,
			Options: labeled("0", "Off (Competitive)", "1", "On"), Default: "0",
			DisplayName: "Vignette",
			Description: "Darkens screen corners. 0=OFF keeps screen edges fully visible for peripheral awareness.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},

		// Competitive: performance tweaks
		{
			Key: "r.OneFrameThreadLag", Section: SectionSystem, Kind: domain.KindChoice,
			Options: labeled("0", "Off (Lower Latency)", "1", "On (Default/Stable)"), Default: "1",
			DisplayName: "One Frame Thread Lag",
			Description: "0 reduces input lag by one frame but may cause stuttering on some systems. Test before ranked matches.",
			Impact:      domain.ImpactMedium, Category: "Competitive Settings",
		},
		{
			Key: "bSmoothFrameRate", Section: SectionEngine, Kind: domain.KindBoolean, Default: "True",
			DisplayName: "Smooth Frame Rate",
			Description: "Engine frame pacing. False=potentially lower latency but may stutter.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},
		{
			Key: "r.CreateShadersOnLoad", Section: SectionSystem, Kind: domain.KindChoice,
			Options: labeled("0", "Off (Faster Load)", "1", "On (Less Stutter)"), Default: "1",
			DisplayName: "Precompile Shaders on Load",
			Description: "1=compile shaders during loading (longer loads, less stuttering). Recommended ON.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},

		// Competitive: texture and VRAM
		{
			Key: "r.Streaming.PoolSize", Section: SectionSystem, Kind: domain.KindNumber, Min: 1024, Max: 16384, Default: "4096",
			DisplayName: "Texture Pool Size (MB)",
			Description: "VRAM budget for texture streaming. 6GB=4096, 8GB=6144, 12GB+=8192.",
			Impact:      domain.ImpactMedium, Category: "Competitive Settings",
		},
		{
			Key: "r.MaxAnisotropy", Section: SectionSystem, Kind: domain.KindChoice,
			Options: labeled("1", "1x (Lowest)", "2", "2x", "4", "4x", "8", "8x", "16", "16x (Best)"), Default: "16",
			DisplayName: "Anisotropic Filtering",
			Description: "Texture clarity at angles. 16=maximum quality with minimal cost on modern GPUs.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},
		{
			Key: "r.TextureStreaming", Section: SectionSystem, Kind: domain.KindChoice,
			Options: labeled("0", "Off (All High-Res)", "1", "On (Dynamic)"), Default: "1",
			DisplayName: "Texture Streaming",
			Description: "1=dynamic texture loading (recommended). 0 loads everything at full resolution and needs far more VRAM.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},

		// Competitive: audio
		{
			Key: "AudioQualityLevel", Section: SectionEmbark, Kind: domain.KindChoice,
			Options: qualityLevels(), Default: "3",
			DisplayName: "Audio Quality Level",
			Description: "Audio processing quality. Higher values may improve positional accuracy for footsteps and gunshots.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},
		{
			Key: "bEnableAudioSpatialisation", Section: SectionEmbark, Kind: domain.KindBoolean, Default: "True",
			DisplayName: "Audio Spatialization",
			Description: "3D positional audio processing. Recommended ON for locating enemies by sound.",
			Impact:      domain.ImpactLow, Category: "Competitive Settings",
		},
	}
}
