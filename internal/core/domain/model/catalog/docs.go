// Package catalog contains the menu: categories, menu items and the
// ratings customers leave on them.
//
// Prices are kernel.Money. A menu item's price is the authoritative unit
// price; the after-tax price is derived on read and never stored.
package catalog
