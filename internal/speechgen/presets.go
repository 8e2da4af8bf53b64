package speechgen

// Preset — готовая связка параметров под типовой сценарий
type Preset struct {
	Name                    string         `json:"name"`
	Description             string         `json:"description"`
	Sampling                SamplingParams `json:"sampling"`
	Chunking                Chunking       `json:"chunking"`
	SceneDescription        string         `json:"scene_description"`
	RefAudioInSystemMessage bool           `json:"ref_audio_in_system_message"`
}

func Presets() map[string]Preset {
	return map[string]Preset{
		"podcast": {
			Name:        "Professional Podcast",
			Description: "High energy, expressive podcast conversation",
			Sampling:    SamplingParams{Temperature: 0.6, TopP: 0.99, TopK: 100, MaxNewTokens: 1024},
			Chunking: Chunking{
				Method:           ChunkSpeaker,
				MaxTurnsPerChunk: 2,
			},
			SceneDescription:        "Dynamic podcast studio with energetic, emotionally engaged hosts",
			RefAudioInSystemMessage: true,
		},
		"narration": {
			Name:        "Long-Form Narration",
			Description: "Calm, engaging narrative with natural pacing",
			Sampling:    SamplingParams{Temperature: 0.35, TopP: 0.96, TopK: 50, MaxNewTokens: 1024},
			Chunking: Chunking{
				Method:           ChunkWord,
				MaxWordsPerChunk: 50,
				BufferSize:       2,
			},
			SceneDescription: "Calm, engaging narration with natural pacing",
		},
		"news": {
			Name:             "News Broadcast",
			Description:      "Professional news delivery with authority",
			Sampling:         SamplingParams{Temperature: 0.4, TopP: 0.95, TopK: 60, MaxNewTokens: 1024},
			Chunking:         Chunking{Method: ChunkNone},
			SceneDescription: "Professional news broadcast with clear, authoritative delivery",
		},
		"audiobook": {
			Name:        "Audiobook/Educational",
			Description: "Clear educational content with steady pace",
			Sampling:    SamplingParams{Temperature: 0.3, TopP: 0.95, TopK: 50, MaxNewTokens: 1024},
			Chunking: Chunking{
				Method:           ChunkWord,
				MaxWordsPerChunk: 60,
			},
			SceneDescription: "Clear educational narration with steady pace",
		},
	}
}

// MultiSpeakerCombination — подобранная пара голосов для диалогов
type MultiSpeakerCombination struct {
	Name        string `json:"name"`
	Voices      string `json:"voices"`
	Description string `json:"description"`
}

func MultiSpeakerCombinations() []MultiSpeakerCombination {
	return []MultiSpeakerCombination{
		{
			Name:        "Podcast Duo (Blake + Luna)",
			Voices:      "Blake_Sports_Podcast_Host,Luna_Music_Review_Host",
			Description: "Energetic sports host and laid-back music reviewer - perfect for dynamic podcasts",
		},
		{
			Name:        "Gaming Show (Zack + Maya)",
			Voices:      "Zack_Gaming_Enthusiast,Maya_Pop_Culture_Queen",
			Description: "Gaming enthusiast and pop culture expert for entertainment content",
		},
		{
			Name:        "Professional News (Rachel + David)",
			Voices:      "Rachel_News_Reporter,David_Documentary_Voice",
			Description: "News reporter and documentary voice for professional broadcasting",
		},
		{
			Name:        "Educational Pair (Emma + James)",
			Voices:      "Emma_Educational_Coach,James_Corporate_Executive",
			Description: "Educational coach and corporate executive for business training content",
		},
	}
}
