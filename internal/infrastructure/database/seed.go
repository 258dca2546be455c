package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableWaitTimeout = 2 * time.Minute

// salarySeed mirrors the agreed hours -> monthly salary reference table.
// Columns: weekly hours, label, gross, net, social security contribution.
var salarySeed = [][4]string{
	{"1 hora", "34.53", "15.65", "84.57"},
	{"2 horas", "69.07", "50.18", "84.57"},
	{"3 horas", "103.60", "84.72", "84.57"},
	{"4 horas", "138.13", "119.25", "84.57"},
	{"5 horas", "172.67", "153.78", "84.57"},
	{"6 horas", "207.20", "188.32", "84.57"},
	{"7 horas", "241.73", "222.85", "84.57"},
	{"8 horas", "276.27", "257.38", "84.57"},
	{"9 horas", "310.80", "291.92", "84.57"},
	{"10 horas", "345.34", "318.35", "120.85"},
	{"11 horas", "379.87", "352.88", "120.85"},
	{"12 horas", "414.40", "387.41", "120.85"},
	{"13 horas", "448.94", "421.95", "120.85"},
	{"14 horas", "483.47", "456.48", "120.85"},
	{"15 horas", "518.00", "480.74", "166.85"},
	{"16 horas", "552.54", "515.28", "166.85"},
	{"17 horas", "587.07", "549.81", "166.85"},
	{"18 horas", "621.60", "584.34", "166.85"},
	{"19 horas", "656.14", "618.88", "166.85"},
	{"20 horas", "690.67", "642.12", "217.42"},
	{"21 horas", "725.20", "676.65", "217.42"},
	{"22 horas", "759.74", "711.19", "217.42"},
	{"23 horas", "794.27", "745.72", "217.42"},
	{"24 horas", "828.80", "780.25", "217.42"},
	{"25 horas", "863.34", "803.30", "268.84"},
	{"26 horas", "897.87", "837.84", "268.84"},
	{"27 horas", "932.40", "872.37", "268.84"},
	{"28 horas", "966.94", "906.90", "268.84"},
	{"29 horas", "1001.47", "941.44", "268.84"},
	{"30 horas", "1036.01", "964.80", "318.84"},
	{"31 horas", "1070.54", "999.34", "318.84"},
	{"32 horas", "1105.07", "1033.87", "318.84"},
	{"33 horas", "1139.61", "1068.40", "318.84"},
	{"34 horas", "1174.14", "1102.94", "318.84"},
	{"35 horas", "1208.67", "1120.55", "394.61"},
	{"36 horas", "1243.21", "1155.09", "394.61"},
	{"37 horas", "1277.74", "1189.62", "394.61"},
	{"38 horas", "1312.27", "1224.15", "394.61"},
	{"39 horas", "1346.81", "1258.69", "394.61"},
	{"40 horas", "1381.34", "1293.21", "394.61"},
}

// tariffSeed lists the named fee concepts: concept, base value, VAT rate,
// description.
var tariffSeed = [][4]string{
	{"cuota_mantenimiento", "62.00", "21.00", "Cuota mensual de mantenimiento por gestión"},
	{"comision_agencia_estandar", "300.00", "21.00", "Comisión de agencia estándar"},
	{"comision_agencia_1dia", "50.00", "21.00", "Comisión agencia para servicio 1 día/semana"},
	{"descuento_segundo_cuidador", "30.00", "0.00", "Porcentaje descuento 2º cuidador"},
	{"sad_sin_cheque", "24.15", "10.00", "SAD sin cheque servicio (por hora)"},
	{"sad_cheque_menor_80h", "16.73", "10.00", "SAD con cheque <80h/mes (por hora)"},
	{"sad_cheque_mayor_80h", "15.53", "10.00", "SAD con cheque >80h/mes (por hora)"},
	{"incremento_pareja", "10.00", "0.00", "Porcentaje incremento si cuida a pareja"},
}

// Bootstrap creates the three tables when missing and loads the reference
// rows. Every write is put-if-absent, so re-running on an already populated
// environment changes nothing. Intended for local and first-boot setups;
// production tables are provisioned out of band.
func Bootstrap(ctx context.Context, ddb *dynamodb.Client) error {
	quotes := getenvDefault("PRESUPUESTOS_TABLE", "cdp_presupuestos")
	salary := getenvDefault("TABLA_SALARIAL_TABLE", "cdp_tabla_salarial")
	tariffs := getenvDefault("TARIFAS_TABLE", "cdp_tarifas")

	if err := ensureTable(ctx, ddb, quotes, "token", types.ScalarAttributeTypeS); err != nil {
		return fmt.Errorf("ensure table %s: %w", quotes, err)
	}
	if err := ensureTable(ctx, ddb, salary, "horas_semanales", types.ScalarAttributeTypeN); err != nil {
		return fmt.Errorf("ensure table %s: %w", salary, err)
	}
	if err := ensureTable(ctx, ddb, tariffs, "concepto", types.ScalarAttributeTypeS); err != nil {
		return fmt.Errorf("ensure table %s: %w", tariffs, err)
	}

	if err := seedSalaryTable(ctx, ddb, salary); err != nil {
		return fmt.Errorf("seed %s: %w", salary, err)
	}
	if err := seedTariffs(ctx, ddb, tariffs); err != nil {
		return fmt.Errorf("seed %s: %w", tariffs, err)
	}
	return nil
}

func ensureTable(ctx context.Context, ddb *dynamodb.Client, name, pk string, pkType types.ScalarAttributeType) error {
	_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return err
	}

	log.Printf("[database][bootstrap] creating table name=%s pk=%s", name, pk)
	_, err = ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(pk), AttributeType: pkType},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(pk), KeyType: types.KeyTypeHash},
		},
	})
	if err != nil {
		return err
	}

	waiter := dynamodb.NewTableExistsWaiter(ddb)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, tableWaitTimeout)
}

func seedSalaryTable(ctx context.Context, ddb *dynamodb.Client, table string) error {
	for i, row := range salarySeed {
		horas := i + 1
		item := map[string]types.AttributeValue{
			"horas_semanales":       &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", horas)},
			"horas_jornada_label":   &types.AttributeValueMemberS{Value: row[0]},
			"salario_bruto_mensual": &types.AttributeValueMemberS{Value: row[1]},
			"salario_neto_mensual":  &types.AttributeValueMemberS{Value: row[2]},
			"cotizacion_ss":         &types.AttributeValueMemberS{Value: row[3]},
		}
		if err := putIfAbsent(ctx, ddb, table, "horas_semanales", item); err != nil {
			return err
		}
	}
	return nil
}

func seedTariffs(ctx context.Context, ddb *dynamodb.Client, table string) error {
	for _, row := range tariffSeed {
		item := map[string]types.AttributeValue{
			"concepto":    &types.AttributeValueMemberS{Value: row[0]},
			"valor":       &types.AttributeValueMemberS{Value: row[1]},
			"iva":         &types.AttributeValueMemberS{Value: row[2]},
			"descripcion": &types.AttributeValueMemberS{Value: row[3]},
			"activo":      &types.AttributeValueMemberBOOL{Value: true},
		}
		if err := putIfAbsent(ctx, ddb, table, "concepto", item); err != nil {
			return err
		}
	}
	return nil
}

func putIfAbsent(ctx context.Context, ddb *dynamodb.Client, table, pk string, item map[string]types.AttributeValue) error {
	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(table),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{"#pk": pk},
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
