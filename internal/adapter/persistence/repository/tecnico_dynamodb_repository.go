package repository

import (
	"context"

	"sieeg_orders/internal/domain/entities"
	"sieeg_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultTecnicosTableName = "tecnicos"

type tecnicoItem struct {
	UID    string `dynamodbav:"uid"`
	Nombre string `dynamodbav:"nombre"`
	Email  string `dynamodbav:"email,omitempty"`
	Rol    string `dynamodbav:"rol"`
	Activo bool   `dynamodbav:"activo"`
}

// TecnicoDynamoRepository reads the shop-account directory. The table is
// written by the auth gateway's provisioning; this side only lists it for
// order assignment (PK: uid).

type TecnicoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITecnicoDirectory = (*TecnicoDynamoRepository)(nil)

func NewTecnicoDynamoRepository(ddb *dynamodb.Client) *TecnicoDynamoRepository {
	return &TecnicoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TECNICOS_TABLE", defaultTecnicosTableName),
	}
}

func (r *TecnicoDynamoRepository) List(ctx context.Context) ([]entities.Tecnico, error) {
	tecnicos := make([]entities.Tecnico, 0)
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it tecnicoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			tecnicos = append(tecnicos, entities.Tecnico(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return tecnicos, nil
}
