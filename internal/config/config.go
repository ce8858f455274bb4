// internal/config/config.go
package config

import "image/color"

const (
	ModID      = "l1nks-master-quest"
	ModVersion = "1.0.0"

	TicksPerSecond = 20
	TickDuration   = 1.0 / TicksPerSecond
	MaxDeltaTime   = 0.25 // ограничение для зависшего кадра, в секундах
)

// Снаряд-луч
const (
	BeamLifetimeTicks = 40
	BeamDamage        = 10.0
	BeamSpeed         = 0.75
	BeamInaccuracy    = 0.0
	BeamEyeOffset     = 0.1
	BeamGravity       = 0.03 // только если гравитация включена
	MotionSmoothing   = 0.5

	BeamHitboxWidth    = 0.5
	BeamHitboxHeight   = 0.5
	BeamTrackingRange  = 4  // чанки
	BeamUpdateInterval = 10 // тики

	ImpactParticleCount  = 15
	ImpactParticleOffset = 0.2
	ImpactParticleSpeed  = 0.05
)

// Отрисовка луча
const (
	BeamHalfWidth     = 1.6
	BeamLength        = 3.0
	BeamAlphaFloor    = 0.1
	BeamScrollRate    = 0.2
	BeamVSpan         = 0.5
	BeamRenderYOffset = 0.15
	BeamRollDegrees   = 180.0
)

// Меч мастера
const (
	SwordCooldownTicks   = 20
	FullHealthTolerance  = 1.0
	SwordAttackDamage    = 5
	SwordAttackSpeed     = -2.0
	PlayerBaseAttack     = 1.0
	PlayerBaseAttackRate = 4.0
)

// Идентификаторы ресурсов
const (
	SoundBeamShoot  = "minecraft:entity.arrow.shoot"
	SoundBeamImpact = "minecraft:block.amethyst_block.hit"
	ParticleGlow    = "minecraft:glow"
	SoundPlayerHurt = "minecraft:entity.player.hurt"

	ShootVolume  = 0.8
	ShootPitch   = 1.6
	ImpactVolume = 0.8
	ImpactPitch  = 1.4

	BeamTexture  = "textures/entity/master_sword_beam.png"
	CombatTab    = "minecraft:combat"
	TabAnchorID  = "minecraft:netherite_sword"
	SwordID      = "master_sword"
	BeamEntityID = "master_sword_beam"
)

// Эталонный хост
const (
	PlayerMaxHealth   = 20.0
	PlayerEyeHeight   = 1.62
	PlayerWidth       = 0.6
	PlayerHeight      = 1.8
	PlayerRegenTicks  = 40 // одна единица здоровья каждые N тиков
	PlayerHurtAmount  = 2.0
	DummyHealth       = 30.0
	DummyWidth        = 0.8
	DummyHeight       = 1.9
	ParticleLifeMin   = 8
	ParticleLifeMax   = 20
	ParticleDrag      = 0.9
	AudioSampleRate   = 48000
	AudioBufferMillis = 100
)

// Экран и камера
const (
	ScreenWidth  = 1200
	ScreenHeight = 800

	CameraFovY     = 60.0
	CameraNear     = 0.1
	CameraFar      = 200.0
	CameraDistance = 9.0
	CameraHeight   = 6.0

	GridHalfExtent = 24
	MouseYawScale  = 0.3

	HealthIndicatorX = 20
	HealthIndicatorY = 40
	IndicatorRadius  = 7.0
	IndicatorSpacing = 3.0
	CooldownBarWidth = 160.0
	CooldownBarY     = 90
)

var (
	BackgroundColor = color.RGBA{18, 20, 30, 255}
	GridColor       = color.RGBA{60, 70, 90, 255}
	GroundColor     = color.RGBA{34, 40, 52, 255}
	PlayerColor     = color.RGBA{80, 200, 120, 255}
	DummyColor      = color.RGBA{200, 160, 90, 255}
	WallColor       = color.RGBA{120, 120, 130, 255}
	ParticleColor   = color.RGBA{140, 255, 230, 220}
	BeamTint        = color.RGBA{180, 240, 255, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthFullColor = color.RGBA{220, 40, 60, 255}
	HealthNoneColor = color.RGBA{20, 20, 20, 255}
	CooldownColor   = color.RGBA{90, 160, 255, 255}
	PausedTint      = color.RGBA{0, 0, 0, 140}
)
