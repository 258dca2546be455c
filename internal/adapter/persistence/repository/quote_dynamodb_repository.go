package repository

import (
	"context"
	"errors"
	"time"

	"cuidandote_presupuestos/internal/domain/entities"
	"cuidandote_presupuestos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultQuotesTableName = "cdp_presupuestos"

type quoteItem struct {
	Token string `dynamodbav:"token"`

	Nombre       string `dynamodbav:"nombre"`
	Email        string `dynamodbav:"email"`
	Telefono     string `dynamodbav:"telefono"`
	CodigoPostal string `dynamodbav:"codigo_postal"`

	TipoServicio      string `dynamodbav:"tipo_servicio"`
	TipoServicioLabel string `dynamodbav:"tipo_servicio_label"`
	DuracionTipo      string `dynamodbav:"duracion_tipo"`
	DiasSemana        string `dynamodbav:"dias_semana"`
	SemanasMes        int    `dynamodbav:"semanas_mes"`
	HorarioTipo       string `dynamodbav:"horario_tipo"`
	HorarioDetalle    string `dynamodbav:"horario_detalle"`
	HorasSemanales    int    `dynamodbav:"horas_semanales"`

	SalarioBruto       string `dynamodbav:"salario_bruto"`
	SalarioNeto        string `dynamodbav:"salario_neto"`
	CotizacionSS       string `dynamodbav:"cotizacion_ss"`
	CuotaCuidandote    string `dynamodbav:"cuota_cuidandote"`
	CuotaCuidandoteIVA string `dynamodbav:"cuota_cuidandote_iva"`
	PagoMensual        string `dynamodbav:"pago_mensual"`
	ComisionAgencia    string `dynamodbav:"comision_agencia"`
	ComisionAgenciaIVA string `dynamodbav:"comision_agencia_iva"`

	LlamadaFecha string `dynamodbav:"llamada_fecha"`
	LlamadaHora  string `dynamodbav:"llamada_hora"`

	IPAddress string `dynamodbav:"ip_address"`
	UserAgent string `dynamodbav:"user_agent"`

	EmailEnviado      bool   `dynamodbav:"email_enviado"`
	EmailEnviadoAt    string `dynamodbav:"email_enviado_at"`
	AdminNotificado   bool   `dynamodbav:"admin_notificado"`
	AdminNotificadoAt string `dynamodbav:"admin_notificado_at"`
	TokenUsado        bool   `dynamodbav:"token_usado"`
	TokenUsadoAt      string `dynamodbav:"token_usado_at"`
	TokenExpiraAt     string `dynamodbav:"token_expira_at"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: token (string)
//
// Expiry is enforced at read time: rows older than token_expira_at are
// reported as absent but never deleted, so the business history survives.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRESUPUESTOS_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, interfaces.ErrDuplicateToken
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}

	q := fromQuoteItem(it)
	if !q.TokenExpiraAt.IsZero() && time.Now().UTC().After(q.TokenExpiraAt) {
		return entities.Quote{}, nil
	}
	return q, nil
}

func (r *QuoteDynamoRepository) MarkUsed(ctx context.Context, token string) error {
	return r.markFlag(ctx, token, "token_usado", "token_usado_at")
}

func (r *QuoteDynamoRepository) MarkEmailSent(ctx context.Context, token string) error {
	return r.markFlag(ctx, token, "email_enviado", "email_enviado_at")
}

func (r *QuoteDynamoRepository) MarkAdminNotified(ctx context.Context, token string) error {
	return r.markFlag(ctx, token, "admin_notificado", "admin_notificado_at")
}

// markFlag flips a boolean flag once and stamps when it happened. The first
// marking wins: a second call fails the condition and is treated as a no-op.
func (r *QuoteDynamoRepository) markFlag(ctx context.Context, token, flagAttr, atAttr string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConditionExpression: aws.String("attribute_exists(#token) AND #flag <> :yes"),
		UpdateExpression:    aws.String("SET #flag = :yes, #at = :now, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#token":      "token",
			"#flag":       flagAttr,
			"#at":         atAttr,
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":yes": &types.AttributeValueMemberBOOL{Value: true},
			":now": &types.AttributeValueMemberS{Value: now},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *QuoteDynamoRepository) Ping(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	return err
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		Token:              q.Token,
		Nombre:             q.Nombre,
		Email:              q.Email,
		Telefono:           q.Telefono,
		CodigoPostal:       q.CodigoPostal,
		TipoServicio:       string(q.TipoServicio),
		TipoServicioLabel:  q.TipoServicioLabel,
		DuracionTipo:       q.DuracionTipo,
		DiasSemana:         q.DiasSemana,
		SemanasMes:         q.SemanasMes,
		HorarioTipo:        string(q.HorarioTipo),
		HorarioDetalle:     q.HorarioDetalle,
		HorasSemanales:     q.HorasSemanales,
		SalarioBruto:       q.SalarioBruto.StringFixed(2),
		SalarioNeto:        q.SalarioNeto.StringFixed(2),
		CotizacionSS:       q.CotizacionSS.StringFixed(2),
		CuotaCuidandote:    q.CuotaCuidandote.StringFixed(2),
		CuotaCuidandoteIVA: q.CuotaCuidandoteIVA.StringFixed(2),
		PagoMensual:        q.PagoMensual.StringFixed(2),
		ComisionAgencia:    q.ComisionAgencia.StringFixed(2),
		ComisionAgenciaIVA: q.ComisionAgenciaIVA.StringFixed(2),
		LlamadaFecha:       q.LlamadaFecha,
		LlamadaHora:        q.LlamadaHora,
		IPAddress:          q.IPAddress,
		UserAgent:          q.UserAgent,
		EmailEnviado:       q.EmailEnviado,
		EmailEnviadoAt:     formatTime(q.EmailEnviadoAt),
		AdminNotificado:    q.AdminNotificado,
		AdminNotificadoAt:  formatTime(q.AdminNotificadoAt),
		TokenUsado:         q.TokenUsado,
		TokenUsadoAt:       formatTime(q.TokenUsadoAt),
		TokenExpiraAt:      formatTime(q.TokenExpiraAt),
		CreatedAt:          formatTime(q.CreatedAt),
		UpdatedAt:          formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		Token:              it.Token,
		Nombre:             it.Nombre,
		Email:              it.Email,
		Telefono:           it.Telefono,
		CodigoPostal:       it.CodigoPostal,
		TipoServicio:       entities.ServiceType(it.TipoServicio),
		TipoServicioLabel:  it.TipoServicioLabel,
		DuracionTipo:       it.DuracionTipo,
		DiasSemana:         it.DiasSemana,
		SemanasMes:         it.SemanasMes,
		HorarioTipo:        entities.ScheduleType(it.HorarioTipo),
		HorarioDetalle:     it.HorarioDetalle,
		HorasSemanales:     it.HorasSemanales,
		SalarioBruto:       decimalFromString(it.SalarioBruto),
		SalarioNeto:        decimalFromString(it.SalarioNeto),
		CotizacionSS:       decimalFromString(it.CotizacionSS),
		CuotaCuidandote:    decimalFromString(it.CuotaCuidandote),
		CuotaCuidandoteIVA: decimalFromString(it.CuotaCuidandoteIVA),
		PagoMensual:        decimalFromString(it.PagoMensual),
		ComisionAgencia:    decimalFromString(it.ComisionAgencia),
		ComisionAgenciaIVA: decimalFromString(it.ComisionAgenciaIVA),
		LlamadaFecha:       it.LlamadaFecha,
		LlamadaHora:        it.LlamadaHora,
		IPAddress:          it.IPAddress,
		UserAgent:          it.UserAgent,
		EmailEnviado:       it.EmailEnviado,
		EmailEnviadoAt:     parseTime(it.EmailEnviadoAt),
		AdminNotificado:    it.AdminNotificado,
		AdminNotificadoAt:  parseTime(it.AdminNotificadoAt),
		TokenUsado:         it.TokenUsado,
		TokenUsadoAt:       parseTime(it.TokenUsadoAt),
		TokenExpiraAt:      parseTime(it.TokenExpiraAt),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func decimalFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
