package interpreter

import "github.com/nmoralesv/informe/internal/model"

// The tables below are the interpreter's entire lexicon: colloquial Spanish
// with the English loanwords that show up in transcribed requests. They are
// read-only after package init; Interpret never mutates them.

// typeProfile holds the recognition vocabulary for one report type. Phrases
// are exact multi-word matches and carry the most weight; keywords and
// context words feed the scoring fallback. label is the Spanish noun used to
// synthesize phrases like "reporte de ventas".
type typeProfile struct {
	reportType model.ReportType
	label      string
	keywords   []string
	context    []string
	phrases    []string
}

// typeProfiles is ordered by the fixed type priority. Phrase matching,
// scoring iteration, and tie-breaking all walk this slice in order.
var typeProfiles = []typeProfile{
	{
		reportType: model.ReportTypeSales,
		label:      "ventas",
		keywords: []string{
			"venta", "ventas", "vender", "vendí", "vendió", "vendieron",
			"transacciones", "operaciones", "comercialización", "facturación",
			"facturas", "ventas realizadas", "ventas totales", "cuánto vendí",
			"cuanto vendí", "cuánto se vendió", "cuanto se vendió",
			"ventas del", "ventas de", "reporte de ventas",
			"estadísticas de ventas", "ventas por",
		},
		context: []string{
			"realizadas", "totales", "generadas", "registradas", "del mes",
			"del año", "por categoría", "por producto",
		},
		phrases: []string{
			"cuánto vendí", "cuanto vendí", "cuánto se vendió", "cuanto se vendió",
			"ventas del mes", "ventas del año", "ventas realizadas", "ventas totales",
			"reporte de ventas", "estadísticas de ventas", "ventas por categoría",
			"ventas por producto", "ventas por método de pago", "ventas agrupadas",
		},
	},
	{
		reportType: model.ReportTypeMyPurchases,
		label:      "mis compras",
		keywords: []string{
			"mis compras", "mis compra", "compras", "pedidos", "mis pedidos",
			"mis pedido", "historial de compras", "historial compras",
			"mis órdenes", "mis ordenes", "productos que he comprado",
			"productos comprados", "qué he comprado", "que he comprado",
			"qué compré", "que compré", "compré", "compraste", "compró",
			"compraron", "pedí", "pediste", "ordené", "ordenaste", "ordenó",
			"historial", "mis adquisiciones", "lo que compré",
			"lo que he comprado", "artículos comprados", "items comprados",
			"productos adquiridos", "compras realizadas", "pedidos realizados",
			"órdenes realizadas",
		},
		context: []string{
			"mías", "propias", "personales", "realizadas por mí", "he comprado",
			"compré", "del último mes", "del mes", "del año", "pendientes",
			"completadas",
		},
		phrases: []string{
			"mis compras del", "mis pedidos del", "historial de compras",
			"qué he comprado", "qué compré", "productos que he comprado",
			"productos que compré", "lo que compré", "mis compras pendientes",
			"mis pedidos pendientes", "mis compras completadas",
			"historial de mis compras", "mis compras recientes", "compras que hice",
		},
	},
	{
		reportType: model.ReportTypeProducts,
		label:      "productos",
		keywords: []string{
			"producto", "productos", "artículos", "items", "mercancía",
			"más vendidos", "mas vendidos", "más vendido", "mas vendido",
			"top productos", "productos populares", "productos destacados",
			"catálogo", "catalogo", "inventario de productos",
			"lista de productos", "productos disponibles", "productos en stock",
			"productos con bajo stock", "productos sin stock",
			"productos agotados", "mejores productos", "productos más populares",
			"productos más vendidos", "top 10 productos", "productos recomendados",
		},
		context: []string{
			"catalogo", "inventario", "disponibles", "existentes", "vendidos",
			"populares", "destacados", "más vendidos", "con bajo stock",
			"sin stock", "agotados", "en stock",
		},
		phrases: []string{
			"productos más vendidos", "productos mas vendidos", "top productos",
			"top 10 productos", "productos con bajo stock", "productos sin stock",
			"productos agotados", "productos disponibles", "lista de productos",
			"catálogo de productos", "inventario de productos",
			"productos populares", "mejores productos", "productos destacados",
			"productos recomendados",
		},
	},
	{
		reportType: model.ReportTypeCustomers,
		label:      "clientes",
		keywords: []string{
			"cliente", "clientes", "usuarios", "compradores", "consumidores",
			"lista de clientes", "información de clientes", "datos de clientes",
			"reporte de clientes", "clientes registrados", "todos los clientes",
			"clientes activos", "clientes frecuentes", "clientes recurrentes",
			"clientes más recurrentes", "clientes vip", "clientes importantes",
			"base de clientes", "clientes del sistema", "usuarios registrados",
			"compradores frecuentes",
		},
		context: []string{
			"registrados", "activos", "totales", "todos", "listado",
			"información", "datos", "reporte", "más recurrentes", "frecuentes",
			"vip", "importantes", "del sistema",
		},
		phrases: []string{
			"lista de clientes", "todos los clientes", "clientes registrados",
			"clientes activos", "clientes más recurrentes", "clientes frecuentes",
			"clientes vip", "información de clientes", "datos de clientes",
			"reporte de clientes", "base de clientes", "usuarios registrados",
		},
	},
	{
		reportType: model.ReportTypeInventory,
		label:      "inventario",
		keywords: []string{
			"inventario", "stock", "existencia", "almacén", "bodega",
			"productos con bajo stock", "productos sin stock",
			"productos agotados", "stock bajo", "stock mínimo",
			"nivel de stock", "control de inventario", "estado del inventario",
			"inventario actual", "stock disponible",
		},
		context: []string{
			"actual", "disponible", "en stock", "bajo", "mínimo", "agotado",
			"sin stock", "control",
		},
		phrases: []string{
			"productos con bajo stock", "productos sin stock",
			"productos agotados", "stock bajo", "inventario actual",
			"estado del inventario", "control de inventario", "stock disponible",
			"nivel de stock", "productos con stock mínimo",
		},
	},
	{
		reportType: model.ReportTypeFinancial,
		label:      "financiero",
		keywords: []string{
			"financiero", "dinero", "ingresos", "ganancias", "pérdidas",
			"balance", "finanzas", "economía", "revenue", "revenues", "gasto",
			"gastos", "gasté", "gastado", "cuánto", "cuanto", "cuánta",
			"cuanta", "he gastado", "total gastado", "monto", "montos",
			"inversión", "inversiones", "resumen de mis gastos",
			"resumen gastos", "mis gastos", "gastos totales", "cuánto gasté",
			"cuanto gasté", "cuánto he gastado", "cuanto he gastado",
			"cuánto dinero", "cuanto dinero", "resumen financiero",
			"estado financiero", "balance financiero", "ingresos totales",
			"ganancias totales", "pérdidas totales", "flujo de caja",
			"ingresos del mes", "ingresos del año", "entró", "ingresó",
			"me entró", "me ingresó", "cuánto me entró", "cuanto me entró",
			"dinero que entró", "dinero que ingresó",
		},
		context: []string{
			"resumen", "análisis", "estado", "situación", "total", "suma",
			"de mis", "personales", "del mes", "del año", "del trimestre",
			"del semestre", "totales", "de ventas", "por ventas", "en ventas",
		},
		phrases: []string{
			"cuánto he gastado", "cuanto he gastado", "cuánto gasté",
			"cuanto gasté", "cuánto dinero", "resumen de mis gastos",
			"mis gastos", "gastos totales", "total gastado", "resumen financiero",
			"ingresos del mes", "ingresos del año", "ingresos del trimestre",
			"ingresos del semestre", "ingresos totales", "ganancias totales",
			"balance financiero", "estado financiero", "cuánto dinero me entró",
			"cuanto dinero me entró", "cuánto me entró de ventas",
			"cuanto me entró de ventas", "cuánto ingresó de ventas",
			"cuanto ingresó de ventas", "dinero que entró de ventas",
			"dinero que ingresó de ventas", "ingresos de ventas",
			"cuánto entró", "cuanto entró", "cuánta entró", "cuanta entró",
		},
	},
}

// personGateIndicators confirms a first-person reading during full-phrase
// matching of my_purchases phrases. Deliberately small: phrase matches are
// already precise, the gate only blocks third-person phrasing.
var personGateIndicators = []string{
	"mis", "mi", "yo", "he", "compré", "gasté", "pedí", "ordené",
}

// personIndicators is the wider first-person vocabulary used by the
// short-circuit classification step.
var personIndicators = []string{
	"mis", "mi", "mío", "mía", "mías", "propias", "personales",
	"yo", "me", "he", "he gastado", "he comprado", "he pedido",
	"compré", "gasté", "pedí", "ordené", "quiero ver mis",
	"quiero ver mi", "dame mis", "muéstrame mis", "muéstrame mi",
	"necesito ver mis", "quiero saber mis", "dame información de mis",
}

var purchaseWords = []string{
	"compra", "compras", "compré", "compraste", "compró",
	"pedido", "pedidos", "pedí", "orden", "ordenes", "ordené",
	"historial", "historiales", "gasto", "gastos", "gasté",
	"gastado", "cuánto", "cuanto", "cuánta", "cuanta",
	"qué compré", "que compré", "qué he comprado", "que he comprado",
	"lo que compré", "lo que he comprado", "productos que compré",
}

var moneyWords = []string{
	"gasto", "gastos", "gasté", "gastado", "dinero",
	"cuánto", "cuanto", "monto", "total", "resumen",
	"cuánto he gastado", "cuanto he gastado", "cuánto gasté",
	"cuanto gasté", "total gastado", "gastos totales",
	"resumen de mis gastos", "resumen gastos",
}

var productListPhrases = []string{
	"productos que he comprado", "productos comprados",
	"qué he comprado", "que he comprado", "qué compré", "que compré",
	"lista de productos", "productos que compré",
	"lo que compré", "lo que he comprado", "artículos comprados",
}

// verbExpansions maps inflected verb forms to their canonical noun. Matched
// verbs append the noun to a working copy of the text before scoring,
// widening recall without touching the stored original.
var verbExpansions = []struct {
	verb string
	noun string
}{
	{"compré", "compras"},
	{"compraste", "compras"},
	{"compró", "compras"},
	{"compraron", "compras"},
	{"pedí", "pedidos"},
	{"ordené", "ordenes"},
	{"gasté", "gastos"},
	{"gastaste", "gastos"},
	{"gastó", "gastos"},
	{"vendí", "ventas"},
	{"vendió", "ventas"},
	{"vendieron", "ventas"},
}

// disambiguationNouns resolves low-score ties: a type owning one of these
// nouns in the text wins over the raw score leader. Checked in this order.
var disambiguationNouns = []struct {
	reportType model.ReportType
	nouns      []string
}{
	{model.ReportTypeSales, []string{"transacción", "transacciones", "operación", "operaciones", "vender", "facturación"}},
	{model.ReportTypeProducts, []string{"artículo", "artículos", "item", "items", "mercancía", "catálogo", "catalogo"}},
	{model.ReportTypeCustomers, []string{"usuario", "usuarios", "comprador", "compradores", "consumidor"}},
	{model.ReportTypeInventory, []string{"stock", "existencia", "almacén", "bodega", "disponible"}},
	{model.ReportTypeFinancial, []string{"ingreso", "ingresos", "ganancia", "ganancias", "balance", "finanzas", "revenue"}},
}

// queryVerbs triggers the last-resort heuristic: a generic ask with no
// scored type still gets a guess from domain nouns.
var queryVerbs = []string{
	"ver", "mostrar", "listar", "obtener", "dame", "quiero", "necesito",
	"muéstrame", "dame información", "quiero saber", "necesito ver",
	"quiero ver", "dame un reporte", "muéstrame un reporte", "quiero un reporte",
}

var fallbackNouns = []struct {
	reportType model.ReportType
	nouns      []string
}{
	{model.ReportTypeMyPurchases, []string{"compra", "pedido", "orden", "historial"}},
	{model.ReportTypeSales, []string{"venta", "transacción", "factura"}},
	{model.ReportTypeProducts, []string{"producto", "artículo", "item", "catálogo"}},
	{model.ReportTypeCustomers, []string{"cliente", "usuario", "comprador"}},
	{model.ReportTypeInventory, []string{"stock", "inventario", "almacén"}},
	{model.ReportTypeFinancial, []string{"dinero", "gasto", "ingreso", "financiero"}},
}

// intentSets is checked in fixed priority order; the first set with any
// phrase present wins. The default intent is query.
var intentSets = []struct {
	intent  model.Intent
	phrases []string
}{
	{model.IntentQuery, []string{
		"mostrar", "ver", "consultar", "obtener", "listar", "ver lista",
		"quiero ver", "dame", "muéstrame", "necesito ver", "quiero saber",
		"dame información", "muéstrame información", "quiero información",
		"necesito información", "dame un reporte", "muéstrame un reporte",
		"quiero un reporte", "necesito un reporte", "dame la lista",
		"muéstrame la lista", "quiero la lista", "necesito la lista",
		"dame los datos", "muéstrame los datos", "quiero los datos",
		"necesito los datos", "cuál", "cual", "qué", "que", "cuáles",
		"cuales", "dónde", "donde",
	}},
	{model.IntentAnalyze, []string{
		"analizar", "análisis", "estadísticas", "estadisticas", "métricas",
		"metricas", "analiza", "haz un análisis", "necesito un análisis",
		"quiero un análisis", "estadística", "indicadores",
	}},
	{model.IntentCompare, []string{
		"comparar", "comparación", "vs", "versus", "diferencias",
		"comparar con", "comparación entre", "diferencias entre",
	}},
	{model.IntentSummarize, []string{
		"resumen", "resumir", "sumario", "total", "totales", "resumen de",
		"dame un resumen", "muéstrame un resumen", "quiero un resumen",
		"necesito un resumen", "resumen total", "resumen general",
		"resumen completo",
	}},
}

// metricSets is walked in fixed order so repeated calls produce identically
// ordered metric slices.
var metricSets = []struct {
	metric   model.Metric
	synonyms []string
}{
	{model.MetricTotal, []string{"total", "suma", "sumar", "totalizar", "sumatoria", "sumatorio", "suma total"}},
	{model.MetricAverage, []string{"promedio", "media", "promediar", "media aritmética", "promedio aritmético"}},
	{model.MetricCount, []string{"cantidad", "número", "contar", "cuántos", "cuántas", "count", "número de"}},
	{model.MetricMax, []string{"máximo", "max", "mayor", "más alto", "peak", "pico", "top"}},
	{model.MetricMin, []string{"mínimo", "min", "menor", "más bajo", "lowest", "bottom"}},
	{model.MetricMedian, []string{"mediana", "median", "valor medio"}},
}

// metricContextWords anchor a metric synonym to a reporting context; a
// synonym only counts when one of these occurs within the context window.
var metricContextWords = []string{
	"reporte", "mostrar", "ver", "obtener", "calcular", "total", "suma",
}

var groupingSets = []struct {
	grouping model.Grouping
	keywords []string
}{
	{model.GroupingDay, []string{"por día", "diario", "día a día", "daily"}},
	{model.GroupingWeek, []string{"por semana", "semanal", "semana a semana", "weekly"}},
	{model.GroupingMonth, []string{"por mes", "mensual", "mes a mes", "monthly"}},
	{model.GroupingYear, []string{"por año", "anual", "año a año", "yearly"}},
	{model.GroupingCategory, []string{"por categoría", "por categoria", "agrupado por categoría", "grouped by category"}},
	{model.GroupingProduct, []string{"por producto", "agrupado por producto", "grouped by product"}},
	{model.GroupingClient, []string{"por cliente", "agrupado por cliente", "grouped by client"}},
}

// topSellingPhrases imply an ordering by sales volume without any explicit
// "by X" phrasing.
var topSellingPhrases = []string{
	"más vendidos", "mas vendidos", "más vendido", "mas vendido",
	"top productos", "productos populares",
}

var formatSets = []struct {
	format   model.OutputFormat
	keywords []string
}{
	{model.FormatPDF, []string{"pdf", "documento pdf", "archivo pdf"}},
	{model.FormatExcel, []string{"excel", "xlsx", "hoja de cálculo", "spreadsheet"}},
	{model.FormatJSON, []string{"json", "datos json", "formato json"}},
	{model.FormatScreen, []string{"pantalla", "ver", "mostrar", "visualizar", "display"}},
}

// stateSets maps state phrasing to normalized order states. Checked before
// the category patterns so "pedidos pendientes" never leaks into a category
// capture.
var stateSets = []struct {
	state    model.OrderState
	synonyms []string
}{
	{model.StateCompleted, []string{"completada", "completadas", "finalizada", "finalizadas", "terminada", "terminadas", "completado", "completados"}},
	{model.StatePending, []string{"pendiente", "pendientes", "en proceso", "procesando", "en espera", "esperando", "por procesar", "sin completar"}},
	{model.StateCancelled, []string{"cancelada", "canceladas", "anulada", "anuladas", "rechazada", "rechazadas", "cancelado", "cancelados"}},
}

// paymentSets maps payment phrasing to the supported gateway. Stripe is the
// only method in this domain.
var paymentSets = []struct {
	method   string
	synonyms []string
}{
	{"stripe", []string{"stripe", "online", "pago online", "pago en línea", "pago en linea"}},
}

var questionWords = []string{"cuánto", "cuánta", "cuántos", "cuántas", "qué", "cuál"}

var comparisonWords = []string{"comparar", "vs", "versus", "diferencias", "comparación"}

var trendWords = []string{"tendencia", "evolución", "crecimiento", "decrecimiento", "tendencias"}

var detailWords = []string{"detallado", "detalle", "completo", "extenso"}
