// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TPS          = 60
	// FrameDuration — шаг часов симуляции за один тик.
	FrameDuration = time.Second / TPS

	PlayerWidth      = 40.0
	PlayerHeight     = 48.0
	PlayerSpeed      = 6.0
	PlayerMaxHealth  = 6
	PlayerBottomGap  = 80.0
	InvincibleFrames = 60
	ShieldFrames     = 60 * 5

	ShotWidth  = 6.0
	ShotHeight = 16.0
	ShotSpeed  = 10.0

	RocketThrust    = 0.35
	RocketMaxSpeed  = 18.0
	RocketTrailRate = 3
	MissileWeave    = 0.3

	EnemyShotWidth  = 6.0
	EnemyShotHeight = 14.0
	EnemyShotSpeed  = 4.0
	EnemyFireChance = 0.006
	EnemyExitMargin = 50.0

	SpawnBaseChance   = 0.02
	SpawnScoreDivisor = 2000.0
	SpawnScoreBonus   = 0.03
	SpawnMaxChance    = 0.05
	MinSpawnInterval  = 250 * time.Millisecond

	ScorePerKill      = 10
	ScorePerBoss      = 150
	BossScoreStep     = 250
	BossWidth         = 200.0
	BossHeight        = 100.0
	BossTopY          = 60.0
	BossBaseHP        = 40
	BossHPPerLevel    = 10
	BossBaseSpeed     = 3.0
	BossSpeedPerLevel = 0.3
	BossFireInterval  = 30
	BossShotWidth     = 6.0
	BossShotHeight    = 18.0
	BossShotSpeed     = 6.0
	BossShotSpread    = 0.25 // радианы между соседними снарядами залпа
	BossWideVolley    = 3    // уровень, с которого залп из пяти снарядов

	PowerUpSize        = 22.0
	PowerUpFallSpeed   = 2.2
	PowerUpExitMargin  = 40.0
	WeaponBoostKills   = 5
	HealthPickupAmount = 1

	ParticleSize     = 3.0
	ParticleSpeed    = 3.0
	ParticleMinLife  = 18.0
	ParticleMaxLife  = 36.0
	ParticleDrag     = 0.98
	ImpactParticles  = 8
	EnemyParticles   = 22
	BossHitParticles = 10
	BossParticles    = 48
	HitParticles     = 20
	DeathParticles   = 120

	HUDLineHeight = 24
	HUDMarginX    = 12
	BossBarWidth  = 220
	BossBarHeight = 12
	BossBarY      = 24
)

var (
	BackgroundColor   = color.RGBA{0, 0, 0, 255}
	PlayerColor       = color.RGBA{56, 189, 248, 255}
	PlayerShieldColor = color.RGBA{155, 220, 255, 255}
	ShotColor         = color.RGBA{253, 224, 71, 255}
	RocketColor       = color.RGBA{251, 146, 60, 255}
	MissileColor      = color.RGBA{244, 114, 182, 255}
	BeamColor         = color.RGBA{125, 211, 252, 255}
	EnemyShotColor    = color.RGBA{251, 146, 60, 255}
	BossColor         = color.RGBA{167, 139, 250, 255}
	BossBarBackColor  = color.RGBA{31, 41, 55, 255}
	TextColor         = color.RGBA{255, 255, 255, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 153}

	ImpactColor      = color.RGBA{253, 224, 71, 255}
	EnemyDeathColor  = color.RGBA{252, 165, 165, 255}
	BossHitColor     = color.RGBA{196, 181, 253, 255}
	BossDeathColor   = color.RGBA{221, 214, 254, 255}
	PlayerHitColor   = color.RGBA{96, 165, 250, 255}
	PlayerDeathColor = color.RGBA{253, 164, 175, 255}
	NukeColor        = color.RGBA{255, 255, 255, 255}

	EnemyColors = map[string]color.RGBA{
		"normal": {239, 68, 68, 255},  // красный
		"fast":   {34, 197, 94, 255},  // зелёный
		"tanky":  {249, 115, 22, 255}, // оранжевый
		"zigzag": {96, 165, 250, 255}, // синий
	}
	PowerUpColors = map[string]color.RGBA{
		"health": {34, 197, 94, 255},
		"weapon": {56, 189, 248, 255},
		"shield": {147, 197, 253, 255},
	}
)
