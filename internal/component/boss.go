// internal/component/boss.go
package component

// BossPhase — фаза схватки с боссом.
type BossPhase int

const (
	BossAbsent BossPhase = iota
	BossActive
	BossDefeated
)

func (p BossPhase) String() string {
	switch p {
	case BossActive:
		return "active"
	case BossDefeated:
		return "defeated"
	default:
		return "absent"
	}
}

// Boss — единственный босс уровня.
type Boss struct {
	Body
	HP        int
	MaxHP     int
	FireTimer int // кадры с последнего залпа
}
