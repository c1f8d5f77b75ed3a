package recordstore

var PGX5URL = pgx5URL
