package validators

import "go.mongodb.org/mongo-driver/bson"

var OperatingWindowValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"bar_id",
			"start_clock",
			"end_clock",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"bar_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"day_of_week": bson.M{
				"bsonType": "string",
				"enum": []string{
					"Sunday", "Monday", "Tuesday", "Wednesday",
					"Thursday", "Friday", "Saturday",
				},
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  "^\\d{4}-\\d{2}-\\d{2}$",
			},

			"start_clock": bson.M{
				"bsonType": "string",
				"pattern":  "^([01]\\d|2[0-3]):[0-5]\\d$",
			},

			"end_clock": bson.M{
				"bsonType": "string",
				"pattern":  "^([01]\\d|2[0-3]):[0-5]\\d$",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
