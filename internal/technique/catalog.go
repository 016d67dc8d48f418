package technique

import (
	"errors"
	"fmt"
)

// ErrUnknownTechnique is returned by Catalog.Get for an unrecognized id.
var ErrUnknownTechnique = errors.New("technique: unknown technique id")

// Catalog holds the validated set of techniques in display order.
// Construct one at startup and pass it to anything that needs it.
type Catalog struct {
	list []Technique
	byID map[string]int
}

// NewCatalog builds and validates the built-in catalog.
func NewCatalog() (*Catalog, error) {
	list := builtins()
	byID := make(map[string]int, len(list))
	for i, t := range list {
		if err := validate(&t); err != nil {
			return nil, fmt.Errorf("technique %q: %w", t.ID, err)
		}
		if _, dup := byID[t.ID]; dup {
			return nil, fmt.Errorf("technique %q: duplicate id", t.ID)
		}
		byID[t.ID] = i
	}
	return &Catalog{list: list, byID: byID}, nil
}

func validate(t *Technique) error {
	if t.ID == "" {
		return errors.New("empty id")
	}
	if len(t.Phases) == 0 {
		return errors.New("no phases")
	}
	for i, p := range t.Phases {
		// Zero duration is allowed: such a phase completes on the next
		// tick. Negative durations would run timers backwards.
		if p.Duration < 0 {
			return fmt.Errorf("phase %d: negative duration %v", i, p.Duration)
		}
	}
	if t.DefaultCycles < 1 {
		return fmt.Errorf("default cycles %d below 1", t.DefaultCycles)
	}
	return nil
}

// All returns the techniques in display order. The slice is shared;
// callers must not mutate it.
func (c *Catalog) All() []Technique {
	return c.list
}

// Len reports the number of techniques.
func (c *Catalog) Len() int {
	return len(c.list)
}

// At returns the technique at index i.
func (c *Catalog) At(i int) *Technique {
	return &c.list[i]
}

// Get looks a technique up by id.
func (c *Catalog) Get(id string) (*Technique, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTechnique, id)
	}
	return &c.list[i], nil
}

// ByCategory returns the techniques in a category, in display order.
func (c *Catalog) ByCategory(cat Category) []Technique {
	var out []Technique
	for _, t := range c.list {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

// Categories lists all categories in display order.
func Categories() []Category {
	return []Category{Focus, Calm, Sleep, Energy, Recovery}
}

func builtins() []Technique {
	return []Technique{
		// Focus & Performance
		{
			ID:          "box",
			Name:        "Box Breathing",
			Tagline:     "Navy SEAL Standard",
			Description: "The gold standard of tactical breathing. Equal parts inhale, hold, exhale, and hold create a \"box\" pattern that brings you to a state of alert calm.",
			Pattern:     "4-4-4-4",
			Phases: []Phase{
				{Kind: Inhale, Duration: 4, Instruction: "Breathe In"},
				{Kind: Hold, Duration: 4, Instruction: "Hold"},
				{Kind: Exhale, Duration: 4, Instruction: "Breathe Out"},
				{Kind: RestAfterExhale, Duration: 4, Instruction: "Hold Empty"},
			},
			Purpose:       "Alert calm, mental clarity, stress inoculation",
			UseCase:       "Pre-performance, daily practice, high-pressure situations",
			Source:        "Navy SEAL standard, Mark Divine (SEALFIT)",
			Color:         arctic,
			DefaultCycles: 5,
			Category:      Focus,
			Difficulty:    Beginner,
		},
		{
			ID:          "gateway",
			Name:        "Gateway Process",
			Tagline:     "CIA Declassified",
			Description: "From declassified CIA documents. Developed at the Monroe Institute for intelligence applications. Achieves \"Focus 10\" state—mind awake, body asleep.",
			Pattern:     "4-4-8",
			Phases: []Phase{
				{Kind: Inhale, Duration: 4, Instruction: "Deep Breath In"},
				{Kind: Hold, Duration: 4, Instruction: "Hold & Hum"},
				{Kind: Exhale, Duration: 8, Instruction: "Resonant Exhale"},
			},
			Purpose:       "Enhanced focus, expanded awareness, mental clarity",
			UseCase:       "Deep concentration, meditation, problem-solving",
			Source:        "CIA/Monroe Institute, declassified 2003",
			Color:         slate,
			DefaultCycles: 7,
			Category:      Focus,
			Difficulty:    Intermediate,
		},
		{
			ID:          "operative",
			Name:        "Operative Protocol",
			Tagline:     "Field Agent Standard",
			Description: "Three-phase technique from declassified CIA training. Emphasizes exhale and post-exhale hold where best mental concentration is achieved.",
			Pattern:     "3-6-3",
			Phases: []Phase{
				{Kind: Inhale, Duration: 3, Instruction: "Effortless Inhale"},
				{Kind: Exhale, Duration: 6, Instruction: "Controlled Exhale"},
				{Kind: RestAfterExhale, Duration: 3, Instruction: "Focus Point"},
			},
			Purpose:       "Tactical calmness, mental concentration under pressure",
			UseCase:       "High-stakes situations, crisis management",
			Source:        "CIA declassified training documents",
			Color:         slate,
			DefaultCycles: 8,
			Category:      Focus,
			Difficulty:    Intermediate,
		},
		{
			ID:          "sere",
			Name:        "SERE Breathing",
			Tagline:     "Survival Training",
			Description: "Core technique from Survival, Evasion, Resistance, and Escape training. Builds stress tolerance through controlled discomfort.",
			Pattern:     "4-7-8-4",
			Phases: []Phase{
				{Kind: Inhale, Duration: 4, Instruction: "Controlled Inhale"},
				{Kind: Hold, Duration: 7, Instruction: "Stress Inoculation"},
				{Kind: Exhale, Duration: 8, Instruction: "Complete Release"},
				{Kind: RestAfterExhale, Duration: 4, Instruction: "Empty Resilience"},
			},
			Purpose:       "Stress inoculation, psychological resilience",
			UseCase:       "Extreme stress preparation, building mental toughness",
			Source:        "SERE Training Program, U.S. Military",
			Color:         gold,
			DefaultCycles: 6,
			Category:      Focus,
			Difficulty:    Advanced,
		},

		// Stress & Calm
		{
			ID:          "combat",
			Name:        "Combat Breathing",
			Tagline:     "Rapid Calm-Down",
			Description: "Designed for rapid calm-down in high-stress situations. Extended exhale activates parasympathetic nervous system, dropping heart rate within seconds.",
			Pattern:     "4-1-8",
			Phases: []Phase{
				{Kind: Inhale, Duration: 4, Instruction: "Breathe In"},
				{Kind: Hold, Duration: 1, Instruction: "Brief Pause"},
				{Kind: Exhale, Duration: 8, Instruction: "Slow Exhale"},
			},
			Purpose:       "Rapid heart rate reduction, combat stress control",
			UseCase:       "Acute stress, panic moments, before confrontation",
			Source:        "U.S. Military Combat Stress Control",
			Color:         gold,
			DefaultCycles: 6,
			Category:      Calm,
			Difficulty:    Beginner,
		},
		{
			ID:          "physiological-sigh",
			Name:        "Physiological Sigh",
			Tagline:     "Instant Calm Reset",
			Description: "The fastest scientifically-proven way to reduce stress in real-time. Double inhale reinflates lung sacs, long exhale offloads CO2, triggering immediate calm.",
			Pattern:     "2-1-6",
			Phases: []Phase{
				{Kind: Inhale, Duration: 2, Instruction: "Inhale (Nose)"},
				{Kind: Inhale, Duration: 1, Instruction: "Sip More Air"},
				{Kind: Exhale, Duration: 6, Instruction: "Long Exhale (Mouth)"},
			},
			Purpose:       "Fastest real-time stress reduction",
			UseCase:       "Panic attacks, immediate relief, emotional reset",
			Source:        "Dr. Andrew Huberman, Stanford Neuroscience",
			Color:         arctic,
			DefaultCycles: 3,
			Category:      Calm,
			Difficulty:    Beginner,
		},
		{
			ID:          "coherent",
			Name:        "Coherent Breathing",
			Tagline:     "Heart-Brain Sync",
			Description: "Breathing at 5 breaths per minute synchronizes heart rate variability, creating \"coherence\" between heart and brain. Used by elite athletes.",
			Pattern:     "6-6",
			Phases: []Phase{
				{Kind: Inhale, Duration: 6, Instruction: "Slow Inhale"},
				{Kind: Exhale, Duration: 6, Instruction: "Slow Exhale"},
			},
			Purpose:       "Heart-brain coherence, HRV optimization",
			UseCase:       "Daily practice, emotional regulation, peak performance",
			Source:        "HeartMath Institute, Stephen Elliott",
			Color:         rose,
			DefaultCycles: 10,
			Category:      Calm,
			Difficulty:    Intermediate,
		},
		{
			ID:          "resonant",
			Name:        "Resonant Breathing",
			Tagline:     "Vagal Tone Builder",
			Description: "Optimizes vagal tone—the strength of your relaxation response. At 5-6 breaths per minute, cardiovascular system enters resonance.",
			Pattern:     "5-5",
			Phases: []Phase{
				{Kind: Inhale, Duration: 5, Instruction: "Smooth Inhale"},
				{Kind: Exhale, Duration: 5, Instruction: "Smooth Exhale"},
			},
			Purpose:       "Build long-term stress resilience",
			UseCase:       "Daily practice, vagal toning, PTSD recovery",
			Source:        "Dr. Richard Brown, Columbia University",
			Color:         emerald,
			DefaultCycles: 12,
			Category:      Calm,
			Difficulty:    Beginner,
		},

		// Sleep & Relaxation
		{
			ID:          "military-sleep",
			Name:        "Military Sleep",
			Tagline:     "2-Minute Sleep Technique",
			Description: "Developed for fighter pilots to fall asleep in 2 minutes under any conditions. Used by 96% of pilots after 6 weeks of practice.",
			Pattern:     "4-7-8",
			Phases: []Phase{
				{Kind: Inhale, Duration: 4, Instruction: "Deep Breath In"},
				{Kind: Hold, Duration: 7, Instruction: "Hold & Relax Face"},
				{Kind: Exhale, Duration: 8, Instruction: "Release Everything"},
			},
			Purpose:       "Fall asleep in under 2 minutes",
			UseCase:       "Insomnia, sleeping in difficult conditions, jet lag",
			Source:        "U.S. Navy Pre-Flight School, Bud Winter",
			Color:         purple,
			DefaultCycles: 6,
			Category:      Sleep,
			Difficulty:    Beginner,
		},
		{
			ID:          "478",
			Name:        "4-7-8 Breathing",
			Tagline:     "Natural Tranquilizer",
			Description: "A powerful relaxation technique that acts as a natural tranquilizer for the nervous system. Long hold and exhale shift body into deep rest mode.",
			Pattern:     "4-7-8",
			Phases: []Phase{
				{Kind: Inhale, Duration: 4, Instruction: "Breathe In"},
				{Kind: Hold, Duration: 7, Instruction: "Hold"},
				{Kind: Exhale, Duration: 8, Instruction: "Breathe Out"},
			},
			Purpose:       "Deep relaxation, nervous system reset",
			UseCase:       "Pre-sleep routine, anxiety relief, wind-down",
			Source:        "Dr. Andrew Weil (based on yogic pranayama)",
			Color:         purple,
			DefaultCycles: 4,
			Category:      Sleep,
			Difficulty:    Beginner,
		},
		{
			ID:          "sleep-exhale",
			Name:        "Sleep Exhale",
			Tagline:     "Extended Exhale Sleep",
			Description: "Emphasizes very long exhale to maximally activate parasympathetic \"rest and digest\" response. 2:1 exhale-to-inhale ratio signals deep safety.",
			Pattern:     "4-2-8-2",
			Phases: []Phase{
				{Kind: Inhale, Duration: 4, Instruction: "Gentle Inhale"},
				{Kind: Hold, Duration: 2, Instruction: "Soft Hold"},
				{Kind: Exhale, Duration: 8, Instruction: "Long Slow Exhale"},
				{Kind: RestAfterExhale, Duration: 2, Instruction: "Rest Empty"},
			},
			Purpose:       "Maximum relaxation, parasympathetic activation",
			UseCase:       "Deep insomnia, racing thoughts, nighttime anxiety",
			Source:        "Clinical sleep research",
			Color:         purple,
			DefaultCycles: 8,
			Category:      Sleep,
			Difficulty:    Beginner,
		},

		// Energy & Activation
		{
			ID:          "energize",
			Name:        "Energizing Breath",
			Tagline:     "Natural Energy Surge",
			Description: "Controlled hyperventilation that boosts oxygen levels and triggers adrenaline release. Creates natural energy surge without caffeine.",
			Pattern:     "1-1",
			Phases: []Phase{
				{Kind: Inhale, Duration: 1, Instruction: "Quick Inhale"},
				{Kind: Exhale, Duration: 1, Instruction: "Quick Exhale"},
			},
			Purpose:       "Alertness, energy boost, wake-up",
			UseCase:       "Morning activation, pre-workout, afternoon slump",
			Source:        "Modified from Wim Hof & Kapalabhati",
			Color:         orange,
			DefaultCycles: 30,
			Category:      Energy,
			Difficulty:    Intermediate,
		},
		{
			ID:          "power",
			Name:        "Power Breathing",
			Tagline:     "Pre-Mission Activation",
			Description: "Used by special operators before missions. Builds energy through breath holds that trigger adrenaline, then channels it with controlled exhales.",
			Pattern:     "4-4-4",
			Phases: []Phase{
				{Kind: Inhale, Duration: 4, Instruction: "Power Inhale"},
				{Kind: Hold, Duration: 4, Instruction: "Build Energy"},
				{Kind: Exhale, Duration: 4, Instruction: "Channel Power"},
			},
			Purpose:       "Peak activation, mental intensity, pre-performance",
			UseCase:       "Before competition, presentations, physical challenges",
			Source:        "Special Operations performance protocols",
			Color:         orange,
			DefaultCycles: 6,
			Category:      Energy,
			Difficulty:    Beginner,
		},
		{
			ID:          "wim-hof",
			Name:        "Wim Hof Method",
			Tagline:     "The Iceman Protocol",
			Description: "Famous technique from \"The Iceman.\" 30 power breaths create massive oxygen saturation and controlled stress exposure, building mental resilience.",
			Pattern:     "2-1",
			Phases: []Phase{
				{Kind: Inhale, Duration: 2, Instruction: "Full Breath In"},
				{Kind: Exhale, Duration: 1, Instruction: "Let Go"},
			},
			Purpose:       "Immune boost, cold tolerance, mental fortitude",
			UseCase:       "Morning practice, cold exposure prep, stress inoculation",
			Source:        "Wim Hof, validated by Radboud University",
			Color:         arctic,
			DefaultCycles: 30,
			Category:      Energy,
			Difficulty:    Advanced,
		},

		// Recovery & Healing
		{
			ID:          "recovery",
			Name:        "Recovery Breathing",
			Tagline:     "Post-Stress Recovery",
			Description: "Designed for recovery after intense physical or mental stress. Longer exhales and holds maximize parasympathetic recovery and reduce cortisol.",
			Pattern:     "4-2-6-4",
			Phases: []Phase{
				{Kind: Inhale, Duration: 4, Instruction: "Recovery Breath"},
				{Kind: Hold, Duration: 2, Instruction: "Brief Hold"},
				{Kind: Exhale, Duration: 6, Instruction: "Release Tension"},
				{Kind: RestAfterExhale, Duration: 4, Instruction: "Deep Rest"},
			},
			Purpose:       "Cortisol reduction, nervous system recovery",
			UseCase:       "Post-workout, after stressful events, evening wind-down",
			Source:        "Sports science recovery protocols",
			Color:         emerald,
			DefaultCycles: 8,
			Category:      Recovery,
			Difficulty:    Beginner,
		},
		{
			ID:          "nsdr",
			Name:        "NSDR Breathing",
			Tagline:     "Non-Sleep Deep Rest",
			Description: "Breathing pattern for Non-Sleep Deep Rest, providing recovery benefits similar to sleep. Achieves deep relaxation while maintaining awareness.",
			Pattern:     "4-6-6",
			Phases: []Phase{
				{Kind: Inhale, Duration: 4, Instruction: "Gentle Inhale"},
				{Kind: Hold, Duration: 6, Instruction: "Restful Hold"},
				{Kind: Exhale, Duration: 6, Instruction: "Melting Exhale"},
			},
			Purpose:       "Deep rest without sleep, recovery, focus restoration",
			UseCase:       "Afternoon recharge, sleep debt recovery, mental reset",
			Source:        "Dr. Andrew Huberman, Stanford protocols",
			Color:         purple,
			DefaultCycles: 10,
			Category:      Recovery,
			Difficulty:    Beginner,
		},
	}
}
