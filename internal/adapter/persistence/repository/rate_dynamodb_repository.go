package repository

import (
	"context"
	"strconv"

	"cuidandote_presupuestos/internal/domain/entities"
	"cuidandote_presupuestos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSalaryTableName  = "cdp_tabla_salarial"
	defaultTariffsTableName = "cdp_tarifas"
)

type salaryItem struct {
	Horas        int    `dynamodbav:"horas_semanales"`
	Label        string `dynamodbav:"horas_jornada_label"`
	SalarioBruto string `dynamodbav:"salario_bruto_mensual"`
	SalarioNeto  string `dynamodbav:"salario_neto_mensual"`
	CotizacionSS string `dynamodbav:"cotizacion_ss"`
}

type tariffItem struct {
	Concepto    string `dynamodbav:"concepto"`
	Valor       string `dynamodbav:"valor"`
	IVA         string `dynamodbav:"iva"`
	Descripcion string `dynamodbav:"descripcion"`
	Activo      bool   `dynamodbav:"activo"`
}

// RateDynamoRepository reads the two reference tables backing the quote
// calculator.
//
// Table requirements:
//   - tabla salarial PK: horas_semanales (number)
//   - tarifas PK: concepto (string)

type RateDynamoRepository struct {
	ddb          *dynamodb.Client
	salaryTable  string
	tariffsTable string
}

var _ interfaces.IRateRepository = (*RateDynamoRepository)(nil)

func NewRateDynamoRepository(ddb *dynamodb.Client) *RateDynamoRepository {
	return &RateDynamoRepository{
		ddb:          ddb,
		salaryTable:  getenvDefault("TABLA_SALARIAL_TABLE", defaultSalaryTableName),
		tariffsTable: getenvDefault("TARIFAS_TABLE", defaultTariffsTableName),
	}
}

func (r *RateDynamoRepository) GetSalaryByHours(ctx context.Context, horas int) (entities.SalaryRate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.salaryTable),
		Key: map[string]types.AttributeValue{
			"horas_semanales": &types.AttributeValueMemberN{Value: strconv.Itoa(horas)},
		},
	})
	if err != nil {
		return entities.SalaryRate{}, err
	}
	if len(out.Item) == 0 {
		return entities.SalaryRate{}, nil
	}

	var it salaryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SalaryRate{}, err
	}
	return entities.SalaryRate{
		Horas:        it.Horas,
		Label:        it.Label,
		SalarioBruto: decimalFromString(it.SalarioBruto),
		SalarioNeto:  decimalFromString(it.SalarioNeto),
		CotizacionSS: decimalFromString(it.CotizacionSS),
	}, nil
}

func (r *RateDynamoRepository) GetTariff(ctx context.Context, concepto string) (entities.Tariff, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tariffsTable),
		Key: map[string]types.AttributeValue{
			"concepto": &types.AttributeValueMemberS{Value: concepto},
		},
	})
	if err != nil {
		return entities.Tariff{}, err
	}
	if len(out.Item) == 0 {
		return entities.Tariff{}, nil
	}

	var it tariffItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Tariff{}, err
	}
	// Inactive rows behave exactly like missing ones.
	if !it.Activo {
		return entities.Tariff{}, nil
	}
	return entities.Tariff{
		Concepto:    it.Concepto,
		Valor:       decimalFromString(it.Valor),
		IVA:         decimalFromString(it.IVA),
		Descripcion: it.Descripcion,
		Activo:      it.Activo,
	}, nil
}
