package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/internal/usecase/interfaces"
	"casar_em_carneiros/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrcamentosTableName = "orcamentos"

type clienteItem struct {
	ID       string `dynamodbav:"id"`
	Nome     string `dynamodbav:"nome"`
	Email    string `dynamodbav:"email"`
	Telefone string `dynamodbav:"telefone"`
	Papel    string `dynamodbav:"papel"`
}

type servicoItem struct {
	Descricao string `dynamodbav:"descricao"`
	Valor     string `dynamodbav:"valor"`
	Status    string `dynamodbav:"status"`
}

type orcamentoItem struct {
	ID                   string                 `dynamodbav:"id"`
	Cliente              clienteItem            `dynamodbav:"cliente"`
	NomeNoivo            string                 `dynamodbav:"nomeNoivo"`
	NomeNoiva            string                 `dynamodbav:"nomeNoiva"`
	DataCasamento        interface{}            `dynamodbav:"dataCasamento"`
	NumeroConvidados     int                    `dynamodbav:"numeroConvidados"`
	ValorTotalConfirmado string                 `dynamodbav:"valorTotalConfirmado"`
	ValorMedioPrevisto   string                 `dynamodbav:"valorMedioPrevisto"`
	Status               string                 `dynamodbav:"status"`
	Servicos             map[string]servicoItem `dynamodbav:"servicos"`
	CreatedAt            string                 `dynamodbav:"createdAt"`
	UpdatedAt            string                 `dynamodbav:"updatedAt"`
}

// OrcamentoDynamoRepository persists Orcamento aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// New records always store dataCasamento as a yyyy-mm-dd string, but legacy
// imports carry unix-seconds numbers and full ISO timestamps; reads accept
// all three and normalize at this boundary.

type OrcamentoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrcamentoRepository = (*OrcamentoDynamoRepository)(nil)

func NewOrcamentoDynamoRepository(ddb *dynamodb.Client) *OrcamentoDynamoRepository {
	return &OrcamentoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORCAMENTOS_TABLE", defaultOrcamentosTableName),
	}
}

func (r *OrcamentoDynamoRepository) Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	av, err := attributevalue.MarshalMap(toOrcamentoItem(o))
	if err != nil {
		return entities.Orcamento{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Orcamento{}, err
	}
	return o, nil
}

// Update is a full overwrite of the stored record; there are no partial
// patch semantics for orcamentos.
func (r *OrcamentoDynamoRepository) Update(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	av, err := attributevalue.MarshalMap(toOrcamentoItem(o))
	if err != nil {
		return entities.Orcamento{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Orcamento{}, nil
		}
		return entities.Orcamento{}, err
	}
	return o, nil
}

func (r *OrcamentoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Orcamento, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Orcamento{}, err
	}
	if len(out.Item) == 0 {
		return entities.Orcamento{}, nil
	}

	var it orcamentoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Orcamento{}, err
	}
	return fromOrcamentoItem(it), nil
}

func (r *OrcamentoDynamoRepository) List(ctx context.Context) ([]entities.Orcamento, error) {
	orcamentos := make([]entities.Orcamento, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it orcamentoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orcamentos = append(orcamentos, fromOrcamentoItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return orcamentos, nil
}

func (r *OrcamentoDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toOrcamentoItem(o entities.Orcamento) orcamentoItem {
	servicos := make(map[string]servicoItem, len(o.Servicos))
	for key, item := range o.Servicos {
		servicos[string(key)] = servicoItem{
			Descricao: item.Descricao,
			Valor:     floatToString(item.Valor),
			Status:    string(item.Status),
		}
	}

	dataCasamento := ""
	if !o.DataCasamento.IsZero() {
		dataCasamento = o.DataCasamento.UTC().Format("2006-01-02")
	}

	return orcamentoItem{
		ID: o.ID,
		Cliente: clienteItem{
			ID:       o.Cliente.ID,
			Nome:     o.Cliente.Nome,
			Email:    o.Cliente.Email,
			Telefone: o.Cliente.Telefone,
			Papel:    string(o.Cliente.Papel),
		},
		NomeNoivo:            o.NomeNoivo,
		NomeNoiva:            o.NomeNoiva,
		DataCasamento:        dataCasamento,
		NumeroConvidados:     o.NumeroConvidados,
		ValorTotalConfirmado: floatToString(o.ValorTotalConfirmado),
		ValorMedioPrevisto:   floatToString(o.ValorMedioPrevisto),
		Status:               string(o.Status),
		Servicos:             servicos,
		CreatedAt:            o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrcamentoItem(it orcamentoItem) entities.Orcamento {
	servicos := make(map[entities.ServicoKey]entities.ServicoItem, len(it.Servicos))
	for key, item := range it.Servicos {
		valor, _ := strconv.ParseFloat(item.Valor, 64)
		servicos[entities.ServicoKey(key)] = entities.ServicoItem{
			Descricao: item.Descricao,
			Valor:     valor,
			Status:    entities.OrcamentoStatus(item.Status),
		}
	}

	dataCasamento, _ := pkg.NormalizeCalendarDate(it.DataCasamento)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	valorTotal, _ := strconv.ParseFloat(it.ValorTotalConfirmado, 64)
	valorMedio, _ := strconv.ParseFloat(it.ValorMedioPrevisto, 64)

	return entities.Orcamento{
		ID: it.ID,
		Cliente: entities.ClienteRef{
			ID:       it.Cliente.ID,
			Nome:     it.Cliente.Nome,
			Email:    it.Cliente.Email,
			Telefone: it.Cliente.Telefone,
			Papel:    entities.PapelCliente(it.Cliente.Papel),
		},
		NomeNoivo:            it.NomeNoivo,
		NomeNoiva:            it.NomeNoiva,
		DataCasamento:        dataCasamento,
		NumeroConvidados:     it.NumeroConvidados,
		ValorTotalConfirmado: valorTotal,
		ValorMedioPrevisto:   valorMedio,
		Status:               entities.OrcamentoStatus(it.Status),
		Servicos:             servicos,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
