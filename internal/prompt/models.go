package prompt

import "github.com/AndrewK67/shorts-studio/internal/domain"

// ToneTarget is a tone with the number of videos it should account for.
type ToneTarget struct {
	Tone  string
	Count int
}

type TopicPromptVars struct {
	Profile     *domain.CreatorProfile
	Context     *domain.RegionalPromptContext
	Count       int
	ToneTargets []ToneTarget
	PriorTitles []string
}

type ScriptPromptVars struct {
	Profile *domain.CreatorProfile
	Context *domain.RegionalPromptContext
	Topic   *domain.Topic
}

type ClusterScript struct {
	ID           string
	Title        string
	Tone         string
	EstimatedSec int
}

type ClusterPromptVars struct {
	Profile *domain.CreatorProfile
	Scripts []ClusterScript
}
