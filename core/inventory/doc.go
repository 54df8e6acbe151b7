// Package inventory persists owned stock with GORM.
//
// Owned quantities are recorded per crafting root: marking ten ingots as owned while
// planning one item does not make them available to another item's plan. The planner consumes
// an inventory while it works, so callers always plan against the fresh copy Get returns and
// never write planning results back.
package inventory
