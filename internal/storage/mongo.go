package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aidi-lab/pubnet/internal/pubrecord"
)

const mongoConnectTimeout = 15 * time.Second

// MongoSource reads the publication corpus from a MongoDB collection.
type MongoSource struct {
	client     *mongo.Client
	database   string
	collection string
}

// ConnectMongo establishes a MongoDB connection and verifies it with a ping.
func ConnectMongo(ctx context.Context, uri, database, collection string) (*MongoSource, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	return &MongoSource{client: client, database: database, collection: collection}, nil
}

// Close disconnects the underlying client.
func (m *MongoSource) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// LoadPublications fetches every publication document in the collection.
func (m *MongoSource) LoadPublications(ctx context.Context) ([]pubrecord.Publication, error) {
	coll := m.client.Database(m.database).Collection(m.collection)

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"publication_year": -1}))
	if err != nil {
		return nil, fmt.Errorf("querying publications: %w", err)
	}
	defer cursor.Close(ctx)

	var pubs []pubrecord.Publication
	for cursor.Next(ctx) {
		var doc struct {
			PaperID         string  `bson:"paper_id"`
			Title           string  `bson:"title"`
			Journal         string  `bson:"journal"`
			Year            int     `bson:"publication_year"`
			Month           int     `bson:"publication_month"`
			Citations       int     `bson:"citations"`
			ImpactFactor    float64 `bson:"impact_factor"`
			Quartile        string  `bson:"quartile"`
			OpenAccess      bool    `bson:"open_access"`
			Type            string  `bson:"publication_type"`
			Abstract        string  `bson:"abstract"`
			PDFURL          string  `bson:"pdf_url"`
			AuthorshipsJSON string  `bson:"authorships_json"`
			ConceptsJSON    string  `bson:"concepts_json"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding publication: %w", err)
		}

		pub := pubrecord.Publication{
			ID:              doc.PaperID,
			Title:           doc.Title,
			Journal:         doc.Journal,
			Year:            doc.Year,
			Month:           doc.Month,
			Citations:       doc.Citations,
			ImpactFactor:    doc.ImpactFactor,
			Quartile:        doc.Quartile,
			OpenAccess:      doc.OpenAccess,
			Type:            doc.Type,
			Abstract:        doc.Abstract,
			PDFURL:          doc.PDFURL,
			AuthorshipsJSON: doc.AuthorshipsJSON,
			ConceptsJSON:    doc.ConceptsJSON,
		}
		pub.Normalize()
		pubs = append(pubs, pub)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterating publications: %w", err)
	}

	return pubs, nil
}
