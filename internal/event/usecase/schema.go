package usecase

import (
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/llmprovider"
)

// eventListSchema is the structured-output shape requested from the model.
var eventListSchema = &llmprovider.Schema{
	Type: llmprovider.SchemaArray,
	Items: &llmprovider.Schema{
		Type: llmprovider.SchemaObject,
		Properties: map[string]*llmprovider.Schema{
			"id":        {Type: llmprovider.SchemaString},
			"title":     {Type: llmprovider.SchemaString},
			"startDate": {Type: llmprovider.SchemaString, Description: "YYYY-MM-DD"},
			"endDate":   {Type: llmprovider.SchemaString, Description: "YYYY-MM-DD, inclusive"},
			"time":      {Type: llmprovider.SchemaString, Description: "HH:MM, 24-hour"},
			"duration":  {Type: llmprovider.SchemaNumber, Description: "minutes"},
			"type": {
				Type: llmprovider.SchemaString,
				Enum: eventTypeNames(),
			},
			"location":    {Type: llmprovider.SchemaString},
			"description": {Type: llmprovider.SchemaString},
			"color":       {Type: llmprovider.SchemaString, Description: "#rrggbb"},
			"guests": {
				Type:  llmprovider.SchemaArray,
				Items: &llmprovider.Schema{Type: llmprovider.SchemaString},
			},
			"notifications": {
				Type: llmprovider.SchemaArray,
				Items: &llmprovider.Schema{
					Type: llmprovider.SchemaObject,
					Properties: map[string]*llmprovider.Schema{
						"type":       {Type: llmprovider.SchemaString, Enum: []string{string(model.NotificationEmail), string(model.NotificationPopup)}},
						"timeBefore": {Type: llmprovider.SchemaNumber, Description: "minutes"},
					},
				},
			},
			"isRecurring":  {Type: llmprovider.SchemaBoolean},
			"recurrenceId": {Type: llmprovider.SchemaString},
		},
		Required: []string{"title", "startDate"},
	},
}

func eventTypeNames() []string {
	names := make([]string, len(model.EventTypes))
	for i, t := range model.EventTypes {
		names[i] = string(t)
	}
	return names
}
