// internal/event/types.go
package event

// Narration events. The payload of each is a combat.Message.
const (
	SkillUsed        EventType = "SkillUsed"
	DamageDealt      EventType = "DamageDealt"
	Healed           EventType = "Healed"
	DrainDone        EventType = "DrainDone"
	StatusApplied    EventType = "StatusApplied"
	DotsAndHots      EventType = "DotsAndHots"
	Revived          EventType = "Revived"
	TimeAltered      EventType = "TimeAltered"
	Advanced         EventType = "Advanced"
	Waited           EventType = "Waited"
	Left             EventType = "Left"
	Flavor           EventType = "Flavor"
	CreatureDied     EventType = "CreatureDied"
	NewRound         EventType = "NewRound"
	EncounterStarted EventType = "EncounterStarted"
	Victory          EventType = "Victory"
	Defeat           EventType = "Defeat"
	DungeonEnded     EventType = "DungeonEnded"
)
