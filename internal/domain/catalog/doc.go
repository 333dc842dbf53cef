// Package catalog contiene las transformaciones puras que convierten ítems de pedidos
// en volumen (kilos): extracción del peso de una etiqueta, cálculo de cantidades por
// variantes, normalización de nombres y el matcher contra el catálogo mayorista.
//
// Ninguna función de este paquete accede a la base de datos ni devuelve errores de
// infraestructura; los datos que no se pueden interpretar se tratan como cero.
package catalog
