package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Frame step, assumed 60 FPS
	FrameDelta = 0.016

	// Layout
	CenterXFrac   = 0.55
	CenterYFrac   = 0.45
	RadiusXFrac   = 0.28
	RadiusYFrac   = 0.24
	LinkDistFrac  = 0.18
	CoreLinkProb  = 0.7
	EdgeLinkProb  = 0.3
	OtherLinkProb = 0.5

	// Pointer forces
	InteractRadius     = 170
	HeldInteractRadius = 220
	IdleForce          = 28
	HeldForce          = 45
	ForceScale         = 0.025

	// Node kinematics
	BrightnessSmoothing = 0.08
	ClickEnergyDecay    = 0.94
	ClickEnergyGlow     = 0.4
	ClickEnergyPush     = 2
	SpringStiffness     = 0.035
	VelocityDamping     = 0.88
	FloatAmplitude      = 2
	FloatEnergyGain     = 4
	GlobalEnergyDecay   = 0.97

	// Particles
	SeedParticles      = 60
	MaxParticles       = 80
	TrailLength        = 8
	ParticleBoostDist  = 150
	ParticleDecay      = 0.95
	ParticleMinBright  = 0.1
	BurstSpeedFloor    = 0.012
	BurstNodes         = 5
	BurstPerNode       = 2
	ParticleBrightStep = 0.02

	// Click effects
	DoubleClickWindow = 350 * time.Millisecond
	ClickRadius       = 200
	MaxBeams          = 6
	BeamSegments      = 6
	BeamJitter        = 20
	SparkCount        = 15
	DoubleSparkCount  = 30
	SparkDrag         = 0.96
	SparkGravity      = 0.05
	RepelHue          = 195
	AttractHue        = 280

	// Shockwaves
	WaveFade       = 0.015
	WaveBand       = 30
	WavePush       = 3
	WaveGlow       = 0.3
	WaveMaxRadius  = 250
	WaveAlpha      = 0.8
	WaveSpeed      = 5
	ModeWaveRadius = 400
	ModeWaveAlpha  = 1
	ModeWaveSpeed  = 8

	// Pointer overlay
	AmbientRadius = 300
	LinkRadius    = 120
	LinkCount     = 5

	// Audio
	SampleRate     = 44100
	TapRingSize    = 4096
	LevelWindow    = 1024
	LevelSmoothing = 0.6
)

// Pointer sentinel when nothing is over the surface.
const OffCanvas = -1000
