package provider

import "google.golang.org/genai"

// estimateSchema declares the structured-output contract for the
// estimation call. The schema keeps the payload machine-parseable but does
// not guarantee completeness: the model may still omit fields, which is why
// Payload keeps everything optional.
func estimateSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"estimatedAge": {Type: genai.TypeInteger},
			"analysis":     {Type: genai.TypeString},
			"healthTips": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"lifeStages": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"stage":       {Type: genai.TypeString},
						"startAge":    {Type: genai.TypeInteger},
						"endAge":      {Type: genai.TypeInteger},
						"color":       {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
					},
				},
			},
			"milestones": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"age":         {Type: genai.TypeInteger},
						"title":       {Type: genai.TypeString},
						"emoji":       {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
					},
				},
			},
		},
	}
}
