package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"account_id",
			"bar_id",
			"booking_date",
			"booking_clock",
			"status",
			"tables",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"account_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"bar_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"booking_date": bson.M{
				"bsonType": "string",
				"pattern":  "^\\d{4}-\\d{2}-\\d{2}$",
			},

			"booking_clock": bson.M{
				"bsonType": "string",
				"pattern":  "^([01]\\d|2[0-3]):[0-5]\\d$",
			},

			"status": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
				"maximum":  3,
			},

			"additional_fee": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"total_price": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"tables": bson.M{
				"bsonType": "array",
				"minItems": 1,
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"table_id"},
					"properties": bson.M{
						"table_id": bson.M{
							"bsonType": "string",
						},
						"base_price": bson.M{
							"bsonType": []string{"double", "int", "long"},
							"minimum":  0,
						},
					},
				},
			},

			"drinks": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"drink_id", "quantity"},
					"properties": bson.M{
						"drink_id": bson.M{
							"bsonType": "string",
						},
						"quantity": bson.M{
							"bsonType": []string{"int", "long"},
							"minimum":  1,
						},
						"unit_price": bson.M{
							"bsonType": []string{"double", "int", "long"},
							"minimum":  0,
						},
					},
				},
			},

			"ticket_url": bson.M{
				"bsonType": "string",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
