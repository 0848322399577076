package db

import (
	"fmt"
	"strconv"

	"github.com/tabsnap/tabsnap/constants"
	"github.com/tabsnap/tabsnap/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const tableName = "tabsnap-metadata"

// GetTrackMetadatas fetches descriptive metadata for up to 10 source
// files, keyed by filename. Metadata is decorative (tab headers only),
// so any lookup problem degrades to an empty result rather than failing
// the transcription.
func GetTrackMetadatas(filenames []string) (map[string]model.TrackMetadata, error) {
	res := make(map[string]model.TrackMetadata)

	if len(filenames) == 0 {
		return res, nil
	}
	if len(filenames) > 10 {
		return res, fmt.Errorf("can only look up 10 filenames at a time, got %v", len(filenames))
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(filename),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetMetadataEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return res, fmt.Errorf("could not create a DynamoDB session: %w", err)
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			tableName: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return res, fmt.Errorf("DynamoDB lookup failed: %w", err)
	}

	for _, v := range dbres.Responses[tableName] {
		var m model.TrackMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			m.Year = uint(year)
		}
		if v["Artist"] != nil && v["Artist"].S != nil {
			m.Artist = *v["Artist"].S
		}
		if v["Release"] != nil && v["Release"].S != nil {
			m.Release = *v["Release"].S
		}
		if v["Title"] != nil && v["Title"].S != nil {
			m.Title = *v["Title"].S
		}
		res[*v["PK"].S] = m
	}

	return res, nil
}
