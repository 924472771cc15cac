// Package simplerecipes provides the recipe and blog view layer for the
// simple-recipes front-end.
//
// Blog posts live in a hosted headless CMS and are reached through a
// ContentClient (Contentful and in-memory implementations are provided under
// subpackages). The Service wraps the client with error wrapping, logging and
// metrics; the view-models (BuildBlogList, NormalizeDetail, RecipeBrowser)
// turn raw entries and the current filter state into render-ready data.
//
// View Controllers
//
// BlogListView and BlogDetailView hold the per-view fetch state
// (idle, loading, success, error). Every fetch carries a ticket from a Tracker;
// a result that arrives after a newer fetch was started is dropped, so fast
// navigation never overwrites fresher state with a stale response.
package simplerecipes
