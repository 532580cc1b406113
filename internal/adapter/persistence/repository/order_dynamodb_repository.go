package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"sieeg_orders/internal/domain/entities"
	"sieeg_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "ordenes"
	folioIndexName         = "folio-index"
)

type clienteItem struct {
	Nombre    string `dynamodbav:"nombre"`
	Telefono  string `dynamodbav:"telefono,omitempty"`
	Correo    string `dynamodbav:"correo,omitempty"`
	Direccion string `dynamodbav:"direccion,omitempty"`
}

type equipoItem struct {
	Tipo        string `dynamodbav:"tipo,omitempty"`
	Marca       string `dynamodbav:"marca,omitempty"`
	Modelo      string `dynamodbav:"modelo,omitempty"`
	NumeroSerie string `dynamodbav:"numero_serie,omitempty"`
}

type accesoriosItem struct {
	Cargador   bool   `dynamodbav:"cargador"`
	SimCard    bool   `dynamodbav:"sim_card"`
	BandejaSIM bool   `dynamodbav:"bandeja_sim"`
	MemoriaSD  bool   `dynamodbav:"memoria_sd"`
	Funda      bool   `dynamodbav:"funda"`
	Cable      bool   `dynamodbav:"cable"`
	Otro       string `dynamodbav:"otro,omitempty"`
	Patron     string `dynamodbav:"patron,omitempty"`
}

type piezaItem struct {
	Descripcion string `dynamodbav:"descripcion"`
	Cantidad    int    `dynamodbav:"cantidad"`
	Precio      string `dynamodbav:"precio"`
	SKU         string `dynamodbav:"sku,omitempty"`
	CatalogID   string `dynamodbav:"catalog_id,omitempty"`
}

type orderItem struct {
	ID     string `dynamodbav:"id"`
	Folio  string `dynamodbav:"folio"`
	Estado string `dynamodbav:"estado"`

	Cliente    clienteItem    `dynamodbav:"cliente"`
	Equipo     equipoItem     `dynamodbav:"equipo"`
	Accesorios accesoriosItem `dynamodbav:"accesorios"`
	Contrasena string         `dynamodbav:"contrasena,omitempty"`

	Diagnostico      string `dynamodbav:"diagnostico,omitempty"`
	DescripcionFalla string `dynamodbav:"descripcion_falla,omitempty"`
	Comentarios      string `dynamodbav:"comentarios,omitempty"`

	// Canonical flat JSON of the polymorphic work log; normalization runs
	// in the entity, the item column just stores the serialized form.
	TrabajosRealizados string `dynamodbav:"trabajos_realizados"`

	Piezas     []piezaItem `dynamodbav:"piezas_usadas"`
	CostoTotal string      `dynamodbav:"costo_total"`

	TecnicoUID    string `dynamodbav:"tecnico_uid,omitempty"`
	TecnicoNombre string `dynamodbav:"tecnico_nombre,omitempty"`
	FirmaCliente  string `dynamodbav:"firma_cliente,omitempty"`
	FirmaTecnico  string `dynamodbav:"firma_tecnico,omitempty"`

	FechaIngreso      string `dynamodbav:"fecha_ingreso,omitempty"`
	FechaEstimada     string `dynamodbav:"fecha_estimada,omitempty"`
	FechaFinalizacion string `dynamodbav:"fecha_finalizacion,omitempty"`

	QuienRecibe  string `dynamodbav:"quien_recibe,omitempty"`
	FechaEntrega string `dynamodbav:"fecha_entrega,omitempty"`

	MotivoCancelacion string `dynamodbav:"motivo_cancelacion,omitempty"`
	FechaCancelacion  string `dynamodbav:"fecha_cancelacion,omitempty"`

	Eliminado         bool   `dynamodbav:"eliminado"`
	MotivoEliminacion string `dynamodbav:"motivo_eliminacion,omitempty"`
	FechaEliminacion  string `dynamodbav:"fecha_eliminacion,omitempty"`

	CreatedAt int64 `dynamodbav:"created_at"`
	UpdatedAt int64 `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI (folio-index): folio (string), serving the public lookup
//
// Soft delete is a flag on the item: List and ListDeleted are two filtered
// scans over the same table.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByFolio(ctx context.Context, folio string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(folioIndexName),
		KeyConditionExpression: aws.String("#folio = :folio"),
		ExpressionAttributeNames: map[string]string{
			"#folio": "folio",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":folio": &types.AttributeValueMemberS{Value: folio},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	return r.scan(ctx, false)
}

func (r *OrderDynamoRepository) ListDeleted(ctx context.Context) ([]entities.Order, error) {
	return r.scan(ctx, true)
}

func (r *OrderDynamoRepository) scan(ctx context.Context, deleted bool) ([]entities.Order, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#del = :deleted"),
		ExpressionAttributeNames: map[string]string{
			"#del": "eliminado",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":deleted": &types.AttributeValueMemberBOOL{Value: deleted},
		},
	}

	var orders []entities.Order
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}

		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return orders, nil
}

// Save overwrites the full item of an existing order. A missing id returns
// a zero-value Order, which callers translate into not-found.
func (r *OrderDynamoRepository) Save(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

func toOrderItem(o entities.Order) orderItem {
	trabajos, err := json.Marshal(o.TrabajosRealizados)
	if err != nil {
		trabajos = []byte("[]")
	}

	piezas := make([]piezaItem, 0, len(o.PiezasUsadas))
	for _, p := range o.PiezasUsadas {
		piezas = append(piezas, piezaItem{
			Descripcion: p.Descripcion,
			Cantidad:    p.Cantidad,
			Precio:      floatToString(p.Precio),
			SKU:         p.SKU,
			CatalogID:   p.CatalogID,
		})
	}

	return orderItem{
		ID:                 o.ID,
		Folio:              o.Folio,
		Estado:             string(o.Estado),
		Cliente:            clienteItem(o.Cliente),
		Equipo:             equipoItem(o.Equipo),
		Accesorios:         accesoriosItem(o.Accesorios),
		Contrasena:         o.Contrasena,
		Diagnostico:        o.Diagnostico,
		DescripcionFalla:   o.DescripcionFalla,
		Comentarios:        o.Comentarios,
		TrabajosRealizados: string(trabajos),
		Piezas:             piezas,
		CostoTotal:         floatToString(o.CostoTotal),
		TecnicoUID:         o.TecnicoUID,
		TecnicoNombre:      o.TecnicoNombre,
		FirmaCliente:       o.FirmaCliente,
		FirmaTecnico:       o.FirmaTecnico,
		FechaIngreso:       o.FechaIngreso,
		FechaEstimada:      o.FechaEstimada,
		FechaFinalizacion:  o.FechaFinalizacion,
		QuienRecibe:        o.QuienRecibe,
		FechaEntrega:       o.FechaEntrega,
		MotivoCancelacion:  o.MotivoCancelacion,
		FechaCancelacion:   o.FechaCancelacion,
		Eliminado:          o.Eliminado,
		MotivoEliminacion:  o.MotivoEliminacion,
		FechaEliminacion:   o.FechaEliminacion,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	costoTotal, _ := strconv.ParseFloat(it.CostoTotal, 64)

	piezas := make([]entities.Pieza, 0, len(it.Piezas))
	for _, p := range it.Piezas {
		precio, _ := strconv.ParseFloat(p.Precio, 64)
		piezas = append(piezas, entities.Pieza{
			Descripcion: p.Descripcion,
			Cantidad:    p.Cantidad,
			Precio:      precio,
			SKU:         p.SKU,
			CatalogID:   p.CatalogID,
		})
	}

	return entities.Order{
		ID:                 it.ID,
		Folio:              it.Folio,
		Estado:             entities.OrderStatus(it.Estado),
		Cliente:            entities.Cliente(it.Cliente),
		Equipo:             entities.Equipo(it.Equipo),
		Accesorios:         entities.Accesorios(it.Accesorios),
		Contrasena:         it.Contrasena,
		Diagnostico:        it.Diagnostico,
		DescripcionFalla:   it.DescripcionFalla,
		Comentarios:        it.Comentarios,
		TrabajosRealizados: entities.NormalizeWorkLog(json.RawMessage(it.TrabajosRealizados)),
		PiezasUsadas:       piezas,
		CostoTotal:         costoTotal,
		TecnicoUID:         it.TecnicoUID,
		TecnicoNombre:      it.TecnicoNombre,
		FirmaCliente:       it.FirmaCliente,
		FirmaTecnico:       it.FirmaTecnico,
		FechaIngreso:       it.FechaIngreso,
		FechaEstimada:      it.FechaEstimada,
		FechaFinalizacion:  it.FechaFinalizacion,
		QuienRecibe:        it.QuienRecibe,
		FechaEntrega:       it.FechaEntrega,
		MotivoCancelacion:  it.MotivoCancelacion,
		FechaCancelacion:   it.FechaCancelacion,
		Eliminado:          it.Eliminado,
		MotivoEliminacion:  it.MotivoEliminacion,
		FechaEliminacion:   it.FechaEliminacion,
		CreatedAt:          it.CreatedAt,
		UpdatedAt:          it.UpdatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
