/*
Package paymentlink issues payment links and keeps them newest first.

Issuance synthesizes an immutable record from a validated form and the
issuer's identity, prepends it to a Collection, caches it by short id and
hands it to the gateway provisioner in the background.

Usage:

	svc := paymentlink.NewService(repo, cache, router, issuer, config, nil)

	link, err := svc.Issue(ctx, form, paymentlink.Identity{ID: userID, Name: name})

	links, err := svc.List(ctx, paymentlink.ListFilter{CreatedBy: userID})

	resolved, err := svc.Resolve(ctx, link.ShortID)

Persistence, caching and provisioning failures are logged and never undo an
issued link.
*/
package paymentlink
