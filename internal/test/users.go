package test

type SeedUser struct {
	ID           int64
	NodeID       string
	IsSuperAdmin bool
}

// These users are present in the seed data loaded into the Postgres container used for tests

var User = SeedUser{
	ID:           1,
	NodeID:       "N:user:028e44e8-2d58-4a6e-bf1c-6c3931d8c7e5",
	IsSuperAdmin: false,
}

var User2 = SeedUser{
	ID:           2,
	NodeID:       "N:user:d24f5a6c-e9de-4d55-9a45-1f5108b522f0",
	IsSuperAdmin: false,
}

var SuperUser = SeedUser{
	ID:           3,
	NodeID:       "N:user:6b1c70cb-5b1b-4682-9e8f-2b4e08a3c4d1",
	IsSuperAdmin: true,
}
