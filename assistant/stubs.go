package assistant

import "dashcomposer/models"

// GetStub returns a fixed sample dataset for the intent's data source.
// It stands in for a real data-retrieval integration and never performs
// I/O; an unrecognized or empty source falls back to the mysql stub.
func GetStub(intent models.Intent) models.DataStub {
	var data []map[string]interface{}
	source := intent.DataSource

	switch source {
	case "mongodb":
		data = []map[string]interface{}{
			{"_id": "1", "value": 150},
			{"_id": "2", "value": 250},
		}
	case "csv":
		data = []map[string]interface{}{
			{"row": 1, "value": 300},
			{"row": 2, "value": 400},
		}
	default:
		source = "mysql"
		data = []map[string]interface{}{
			{"id": 1, "value": 100},
			{"id": 2, "value": 200},
		}
	}

	return models.DataStub{
		Source: source,
		Data:   data,
		Count:  len(data),
	}
}
