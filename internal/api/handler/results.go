package handler

import "go.mongodb.org/mongo-driver/mongo"

// Storage results are passed through to the client in the wire shape the
// previous server exposed (lower-camel keys, acknowledged flag). Writes that
// return without error are acknowledged by definition under the default
// write concern.

type insertOneResponse struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type updateResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId,omitempty"`
}

type deleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func toInsertResponse(res *mongo.InsertOneResult) insertOneResponse {
	return insertOneResponse{Acknowledged: true, InsertedID: res.InsertedID}
}

func toUpdateResponse(res *mongo.UpdateResult) updateResponse {
	return updateResponse{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func toDeleteResponse(res *mongo.DeleteResult) deleteResponse {
	return deleteResponse{Acknowledged: true, DeletedCount: res.DeletedCount}
}
