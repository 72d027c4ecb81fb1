package config

// TuningConfig is the root config for tuning.json
type TuningConfig struct {
	Display DisplayConfig          `json:"display"`
	Physics PhysicsSettings        `json:"physics"`
	Player  PlayerConfig           `json:"player"`
	Enemies map[string]EnemyConfig `json:"enemies"`
}

type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth"`
	ScreenHeight  int     `json:"screenHeight"`
	PixelsPerUnit float64 `json:"pixelsPerUnit"`
}

type PhysicsSettings struct {
	Gravity      float64 `json:"gravity"`   // negative, Y up
	FixedStep    float64 `json:"fixedStep"` // seconds per physics tick
	MaxSteps     int     `json:"maxSteps"`  // physics ticks per frame cap
	Iterations   int     `json:"iterations"`
	HazardDamage int     `json:"hazardDamage"`
}

type MovementConfig struct {
	Model                string  `json:"model"` // "instant" or "accelerated"
	MoveSpeed            float64 `json:"moveSpeed"`
	Acceleration         float64 `json:"acceleration"`
	Deceleration         float64 `json:"deceleration"`
	AirControlMultiplier float64 `json:"airControlMultiplier"`
	TurnaroundMultiplier float64 `json:"turnaroundMultiplier"`
	InputDeadzone        float64 `json:"inputDeadzone"`
}

// Movement models
const (
	ModelInstant     = "instant"
	ModelAccelerated = "accelerated"
)

type JumpConfig struct {
	Force         float64 `json:"force"`
	CoyoteTime    float64 `json:"coyoteTime"`
	JumpBuffer    float64 `json:"jumpBuffer"`
	ExtraAirJumps int     `json:"extraAirJumps"`
}

type DashConfig struct {
	Enabled  bool    `json:"enabled"`
	Slots    int     `json:"slots"`
	Speed    float64 `json:"speed"`
	Duration float64 `json:"duration"`
	Cooldown float64 `json:"cooldown"`
	Stagger  float64 `json:"stagger"`
}

type AttackConfig struct {
	Duration float64 `json:"duration"`
	Damage   int     `json:"damage"`
	Hitbox   Rect    `json:"hitbox"`
}

type AnimationConfig struct {
	WalkFPS        float64 `json:"walkFps"`
	WalkSequence   []int   `json:"walkSequence"`
	AirborneSprite bool    `json:"airborneSprite"`
	DashSprite     bool    `json:"dashSprite"`
}

type HealthConfig struct {
	MaxHP               int     `json:"maxHp"`
	InvulnerabilityTime float64 `json:"invulnerabilityTime"`
	FlashInterval       float64 `json:"flashInterval"`
	HitKnockback        float64 `json:"hitKnockback"`
	DeathKnockback      float64 `json:"deathKnockback"`
	DeathFreezeDelay    float64 `json:"deathFreezeDelay"`
	DeathShakeCount     int     `json:"deathShakeCount"`
	DeathShakeSpeed     float64 `json:"deathShakeSpeed"`
	DeathShakeInterval  float64 `json:"deathShakeInterval"`
	RespawnDelay        float64 `json:"respawnDelay"`
	InstantRespawn      bool    `json:"instantRespawn"`
}

type GroundCheckConfig struct {
	OffsetY float64 `json:"offsetY"` // below the body center
	Radius  float64 `json:"radius"`
}

// Rect is a box relative to an actor center, authored facing right
type Rect struct {
	OffsetX float64 `json:"offsetX" yaml:"offsetX"`
	OffsetY float64 `json:"offsetY" yaml:"offsetY"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
