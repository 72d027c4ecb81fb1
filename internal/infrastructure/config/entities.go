package config

type PlayerConfig struct {
	Size        SizeConfig        `json:"size"`
	Mass        float64           `json:"mass"`
	Movement    MovementConfig    `json:"movement"`
	Jump        JumpConfig        `json:"jump"`
	Dash        DashConfig        `json:"dash"`
	Attack      AttackConfig      `json:"attack"`
	Animation   AnimationConfig   `json:"animation"`
	Health      HealthConfig      `json:"health"`
	GroundCheck GroundCheckConfig `json:"groundCheck"`
}

type EnemyConfig struct {
	ID            string       `json:"id"`
	Size          SizeConfig   `json:"size"`
	Mass          float64      `json:"mass"`
	ContactDamage int          `json:"contactDamage"`
	Health        HealthConfig `json:"health"`
	AI            AIConfig     `json:"ai"`
}

type AIConfig struct {
	DisableIdle         bool    `json:"disableIdle"`
	PatrolSpeed         float64 `json:"patrolSpeed"`
	ChaseSpeed          float64 `json:"chaseSpeed"`
	ChaseRange          float64 `json:"chaseRange"`
	IdleIntervalMin     float64 `json:"idleIntervalMin"`
	IdleIntervalMax     float64 `json:"idleIntervalMax"`
	IdleDurationMin     float64 `json:"idleDurationMin"`
	IdleDurationMax     float64 `json:"idleDurationMax"`
	FlipCooldown        float64 `json:"flipCooldown"`
	MinTravelBeforeFlip float64 `json:"minTravelBeforeFlip"`
	GroundCheckForward  float64 `json:"groundCheckForward"`
	GroundCheckDown     float64 `json:"groundCheckDown"`
	WallCheckDistance   float64 `json:"wallCheckDistance"`
}
