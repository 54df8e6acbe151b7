// Package tracker keeps owned materials per crafting root and plans what is left to buy.
//
// # Endpoints
//
//   - GET /tracker/:root : Needed, owned and remaining quantity of every material.
//   - GET /tracker/:root/plan?qty=&ignore_owned= : Owned-aware purchase plan.
//   - PUT /tracker/:root/items/:item : Record owned stock of one material.
//   - DELETE /tracker/:root : Forget all owned stock of the root.
//
// Owned stock lives in the owned_materials table. Without a database the tracker still
// plans, treating every root as owning nothing, and rejects writes with 503.
// Plans work on a copy of the stock; only the PUT and DELETE endpoints change it.
package tracker
