package usecase

import (
	"fmt"
	"strings"

	"eco-wardrobe/internal/model"
)

const analyzePromptTemplate = `Analyze this clothing item for a gender-neutral digital wardrobe.
Focus on TEXTURE (tactile feel) and VIBE (atmosphere/aesthetic).
Provide the result as a single JSON object with the keys
name, category, color, material, texture, vibe, tags, materialScore, sustainabilityTip.

Constraints:
- category: %s
- materialScore: 1-100 based on ecological impact.
- texture: Describe how it feels (e.g., 'heavy-knit', 'sheer-flowing', 'stiff-utilitarian').
- vibe: Describe the atmosphere (e.g., 'minimalist-industrial', 'earthy-bohemian', 'sharp-editorial').
- tags: a short list of strings.`

const recommendPromptTemplate = `User Style Identity: "%s"
User's definition of this mood: "%s"
Keywords: %s

Current Wardrobe:
%s

Task: Suggest 3 outfits that strictly align with the user's PERSONAL definition of this mood.
Focus on matching TEXTURES and ATMOSPHERE.
Explain the 'vibeAlignment' based on how the textures complement each other.
Avoid all gendered language. Use only the IDs provided.
Reply with a JSON array of objects with the keys
id, title, description, itemIds, vibeAlignment, sustainabilityNote.`

const tryOnPromptTemplate = `Considering a new item: %s (Texture: %s, Vibe: %s).
Current Closet:
%s

Show the user how this item integrates into their current aesthetic.
Focus on "Atmospheric Synergy": how this new texture interacts with their existing ones.
Avoid gendered terms. Return 2 outfit ideas.
Reply with a JSON array of objects with the keys
id, title, description, itemIds, vibeAlignment, sustainabilityNote.`

func analyzePrompt() string {
	names := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		names[i] = string(c)
	}
	return fmt.Sprintf(analyzePromptTemplate, strings.Join(names, ", "))
}

func recommendPrompt(mood model.StyleMood, inventory []model.Item) string {
	return fmt.Sprintf(recommendPromptTemplate,
		mood.Name,
		mood.Description,
		strings.Join(mood.Keywords, ", "),
		describeInventory(inventory, true),
	)
}

func tryOnPrompt(name, texture, vibe string, inventory []model.Item) string {
	return fmt.Sprintf(tryOnPromptTemplate,
		name, texture, vibe,
		describeInventory(inventory, false),
	)
}

// describeInventory renders one line per item so the model can refer to
// items by id. Wear counts are included only where reuse matters.
func describeInventory(items []model.Item, withWearCount bool) string {
	lines := make([]string, len(items))
	for i, item := range items {
		if withWearCount {
			lines[i] = fmt.Sprintf("- [ID: %s] %s (Texture: %s, Vibe: %s, Worn: %d)",
				item.ID, item.Name, item.Texture, item.Vibe, item.TimesWorn)
			continue
		}
		lines[i] = fmt.Sprintf("- [ID: %s] %s (Texture: %s, Vibe: %s)",
			item.ID, item.Name, item.Texture, item.Vibe)
	}
	return strings.Join(lines, "\n")
}
