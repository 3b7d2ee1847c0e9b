package utils

// AuthCachePrefix namespaces verified-token entries in the auth cache.
const AuthCachePrefix = "authcache:"
